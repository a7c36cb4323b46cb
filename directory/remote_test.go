package directory

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

const stationListJSON = `[
	{"code": "AAA", "name": "Alpha Junction", "city": "Alphaville", "state": "AP"},
	{"code": "BBB", "name": "Beta Central", "city": "Betatown", "state": "BP"}
]`

// TestRemote_FetchOncePerProcess verifies concurrent lookups share one fetch
// and later lookups reuse the loaded table.
func TestRemote_FetchOncePerProcess(t *testing.T) {
	var fetches int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fetches, 1)
		_, _ = w.Write([]byte(stationListJSON))
	}))
	defer srv.Close()

	d := NewRemote(srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := d.Lookup("AAA"); !ok {
				t.Error("AAA should resolve from the fetched list")
			}
		}()
	}
	wg.Wait()

	// Sequential use after loading must not refetch.
	_, _ = d.Lookup("bbb")
	_ = d.Search("beta")

	if got := atomic.LoadInt64(&fetches); got != 1 {
		t.Errorf("station list fetched %d times; want 1", got)
	}
}

// TestRemote_FailureDegradesAndRetries verifies a failed fetch degrades
// lookups to not-found and the next call tries again.
func TestRemote_FailureDegradesAndRetries(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(stationListJSON))
	}))
	defer srv.Close()

	d := NewRemote(srv.URL)

	if _, ok := d.Lookup("AAA"); ok {
		t.Error("lookup should degrade to not-found while the list is unavailable")
	}
	if _, ok := d.Lookup("AAA"); !ok {
		t.Error("fetch should be retried and succeed")
	}
	if got := atomic.LoadInt64(&calls); got != 2 {
		t.Errorf("expected 2 fetch attempts, got %d", got)
	}
}
