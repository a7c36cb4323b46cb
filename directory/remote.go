package directory

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// RemoteDirectory serves lookups from a station list fetched over HTTP.
//
// The fetch is memoized process-wide: a successful fetch is kept for the
// process lifetime, and while a fetch is in flight every concurrent caller
// attaches to the same pending request instead of issuing its own. A failed
// fetch is shared by all waiters and retried on the next call.
type RemoteDirectory struct {
	url        string
	httpClient *http.Client

	group  singleflight.Group
	mu     sync.RWMutex
	loaded *StaticDirectory
}

// NewRemote creates a directory backed by the station list at url.
func NewRemote(url string) *RemoteDirectory {
	return &RemoteDirectory{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *RemoteDirectory) directory() (*StaticDirectory, error) {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded != nil {
		return loaded, nil
	}

	v, err, _ := d.group.Do("fetch", func() (any, error) {
		// Re-check under the flight: a previous winner may have loaded it.
		d.mu.RLock()
		already := d.loaded
		d.mu.RUnlock()
		if already != nil {
			return already, nil
		}

		sd, err := d.fetch()
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.loaded = sd
		d.mu.Unlock()
		return sd, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*StaticDirectory), nil
}

func (d *RemoteDirectory) fetch() (*StaticDirectory, error) {
	resp, err := d.httpClient.Get(d.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch station list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, d.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read station list: %w", err)
	}

	var list []Station
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode station list: %w", err)
	}
	return New(list), nil
}

// Lookup resolves a code against the fetched list. A fetch failure degrades
// to not-found; the caller's raw-code fallback applies.
func (d *RemoteDirectory) Lookup(code string) (Station, bool) {
	sd, err := d.directory()
	if err != nil {
		log.Printf("location directory unavailable: %v", err)
		return Station{}, false
	}
	return sd.Lookup(code)
}

// Search matches against the fetched list; empty on fetch failure.
func (d *RemoteDirectory) Search(query string) []Station {
	sd, err := d.directory()
	if err != nil {
		log.Printf("location directory unavailable: %v", err)
		return nil
	}
	return sd.Search(query)
}
