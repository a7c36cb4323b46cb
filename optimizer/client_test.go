package optimizer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestFetchRoutes_QueryEncoding verifies the request hits /api/routes with
// the expected parameters.
func TestFetchRoutes_QueryEncoding(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"optimal_routes": [], "all_generated_routes": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	payload, err := c.FetchRoutes(context.Background(), Request{
		Origin:       "PGT",
		Destination:  "KOTA",
		MaxTransfers: 2,
		TravelDate:   "2026-09-01",
	})
	if err != nil {
		t.Fatalf("FetchRoutes failed: %v", err)
	}
	if len(payload) == 0 {
		t.Error("payload should be passed through raw")
	}
	if gotPath != "/api/routes" {
		t.Errorf("path = %q; want /api/routes", gotPath)
	}
	for key, want := range map[string]string{
		"origin":        "PGT",
		"destination":   "KOTA",
		"max_transfers": "2",
		"travel_date":   "2026-09-01",
	} {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != want {
			t.Errorf("query %s = %v; want %q", key, gotQuery[key], want)
		}
	}
}

// TestFetchRoutes_OmitsEmptyDate verifies the optional date is not sent when
// unset.
func TestFetchRoutes_OmitsEmptyDate(t *testing.T) {
	var hasDate bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDate = r.URL.Query()["travel_date"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, _ = c.FetchRoutes(context.Background(), Request{Origin: "A", Destination: "B"})
	if hasDate {
		t.Error("empty travel_date should be omitted")
	}
}

// TestFetchRoutes_ServiceError verifies a non-success status surfaces the
// service's own error envelope as a TransportError.
func TestFetchRoutes_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "optimizer overloaded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.FetchRoutes(context.Background(), Request{Origin: "A", Destination: "B"})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %T; want *TransportError", err)
	}
	if terr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", terr.StatusCode)
	}
	if terr.Message != "optimizer overloaded" {
		t.Errorf("message = %q; want the envelope text", terr.Message)
	}
}

// TestFetchRoutes_ErrorWithoutEnvelope verifies a non-JSON error body falls
// back to a status-based message.
func TestFetchRoutes_ErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.FetchRoutes(context.Background(), Request{Origin: "A", Destination: "B"})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %T; want *TransportError", err)
	}
	if terr.Message == "" {
		t.Error("fallback message should not be empty")
	}
}

// TestFetchRoutes_Unreachable verifies connection failures come back as
// TransportError too, so callers have one error surface.
func TestFetchRoutes_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := c.FetchRoutes(context.Background(), Request{Origin: "A", Destination: "B"})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %T; want *TransportError", err)
	}
}
