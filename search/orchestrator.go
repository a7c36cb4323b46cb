package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/routes-to-journeys/normalizer"
	"github.com/theoremus-urban-solutions/routes-to-journeys/notify"
	"github.com/theoremus-urban-solutions/routes-to-journeys/optimizer"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

// RouteFetcher is what the orchestrator needs from the optimizer client.
type RouteFetcher interface {
	FetchRoutes(ctx context.Context, r optimizer.Request) ([]byte, error)
}

// Outcome summarizes one completed submission.
type Outcome struct {
	SearchID     string
	OptimalCount int
	AllCount     int
	Warnings     int
	// FocusResults is the one-shot cue to move the user's attention to the
	// results area. Advisory only.
	FocusResults bool
	// Stale marks a response that arrived after a newer submission started
	// and was discarded without touching the store.
	Stale bool
}

// Orchestrator drives one search transaction end to end: validate, fetch,
// normalize, install, notify.
//
// Requests are tagged with a monotonically increasing sequence number. There
// is no cancellation of an in-flight request; instead, a response is installed
// only when its sequence number is still the latest, so a superseding
// submission always wins and a stale response is discarded outright.
type Orchestrator struct {
	client   RouteFetcher
	store    *store.ResultStore
	notifier notify.Notifier
	validate *validator.Validate

	mu       sync.Mutex
	seq      uint64
	inFlight int
}

// NewOrchestrator wires the pipeline together.
func NewOrchestrator(client RouteFetcher, st *store.ResultStore, notifier notify.Notifier) *Orchestrator {
	return &Orchestrator{
		client:   client,
		store:    st,
		notifier: notifier,
		validate: validator.New(),
	}
}

// Store returns the result store the orchestrator installs into.
func (o *Orchestrator) Store() *store.ResultStore { return o.store }

// InFlight reports whether a submission is outstanding. UIs use this to
// disable the submit control while a search is running.
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight > 0
}

// Submit runs one search transaction. The previous result set is discarded
// before the request goes out so stale routes are never shown next to a
// loading state.
func (o *Orchestrator) Submit(ctx context.Context, req Request) (Outcome, error) {
	searchID := uuid.NewString()
	outcome := Outcome{SearchID: searchID}

	if verr := validateRequest(o.validate, req); verr != nil {
		o.notifier.Notify(notify.Notification{
			Severity: notify.Error,
			Title:    "Missing Information",
			Body:     verr.Msg,
			SearchID: searchID,
		})
		return outcome, verr
	}

	o.mu.Lock()
	o.seq++
	mySeq := o.seq
	o.inFlight++
	o.store.Reset()
	o.mu.Unlock()

	started := time.Now()
	payload, fetchErr := o.client.FetchRoutes(ctx, optimizer.Request{
		Origin:       req.Origin,
		Destination:  req.Destination,
		MaxTransfers: req.MaxTransfers,
		TravelDate:   req.TravelDate,
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	o.inFlight--

	if mySeq != o.seq {
		// A newer submission already owns the store.
		outcome.Stale = true
		return outcome, nil
	}

	if fetchErr != nil {
		o.store.Reset()
		o.notifier.Notify(notify.Notification{
			Severity: notify.Error,
			Title:    "Error Searching Routes",
			Body:     userMessage(fetchErr),
			SearchID: searchID,
		})
		return outcome, fetchErr
	}

	rs, warnings, nerr := normalizer.Normalize(payload)
	if nerr != nil {
		// The missing-field detail stays in the log; the user gets the
		// generic message.
		log.Printf("search %s: %v", searchID, nerr)
		o.store.Reset()
		o.notifier.Notify(notify.Notification{
			Severity: notify.Error,
			Title:    "Error Searching Routes",
			Body:     "Could not read the routes the service returned.",
			SearchID: searchID,
		})
		return outcome, nerr
	}

	warnings.LogAll(searchID)
	o.store.SetResultSet(*rs)

	outcome.OptimalCount = len(rs.OptimalRoutes)
	outcome.AllCount = len(rs.AllGeneratedRoutes)
	outcome.Warnings = warnings.Total()
	outcome.FocusResults = true

	if rs.Empty() {
		o.notifier.Notify(notify.Notification{
			Severity: notify.Info,
			Title:    "No Routes Found",
			Body:     "No routes were found for your selected criteria.",
			SearchID: searchID,
		})
	} else {
		o.notifier.Notify(notify.Notification{
			Severity: notify.Info,
			Title:    "Routes Found!",
			Body: fmt.Sprintf("Found %d optimal and %d generated routes in %s.",
				outcome.OptimalCount, outcome.AllCount, time.Since(started).Round(time.Millisecond)),
			SearchID: searchID,
		})
	}
	return outcome, nil
}

// userMessage picks the most specific message available for an error surface.
func userMessage(err error) string {
	var terr *optimizer.TransportError
	if errors.As(err, &terr) {
		return terr.Message
	}
	return err.Error()
}
