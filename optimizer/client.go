package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Request is a read-only query to the route optimization service.
type Request struct {
	Origin       string
	Destination  string
	MaxTransfers int
	// TravelDate is optional and passed through verbatim; the service decides
	// what to do with it.
	TravelDate string
}

// Client fetches route payloads from the route optimization service.
// It returns raw payload bytes; decoding is the normalizer's job.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given service base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRoutes performs one search query and returns the raw response payload.
// Any failure, transport-level or a non-success status, comes back as a
// *TransportError with the most specific message the service provided.
func (c *Client) FetchRoutes(ctx context.Context, r Request) ([]byte, error) {
	q := url.Values{}
	q.Set("origin", r.Origin)
	q.Set("destination", r.Destination)
	q.Set("max_transfers", strconv.Itoa(r.MaxTransfers))
	if r.TravelDate != "" {
		q.Set("travel_date", r.TravelDate)
	}
	reqURL := fmt.Sprintf("%s/api/routes?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("route service unreachable: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: errorMessageFrom(body, resp.StatusCode)}
	}

	return body, nil
}

// errorMessageFrom extracts the service's structured error message when there
// is one, falling back to the bare status code.
func errorMessageFrom(body []byte, status int) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fmt.Sprintf("HTTP %d from route service", status)
}
