package routestojourneys

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
	"github.com/theoremus-urban-solutions/routes-to-journeys/search"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// searchQuery is the parsed and validated /api/search query string.
type searchQuery struct {
	request  search.Request
	mode     store.DisplayMode
	hasMode  bool
	category string
}

// parseAndValidateSearch turns raw query parameters into a search request.
// Code casing is normalized here; everything else the search package guards.
func parseAndValidateSearch(params map[string]string) (searchQuery, error) {
	m := map[string]string{}
	for k, v := range params {
		m[lower(k)] = strings.TrimSpace(v)
	}

	q := searchQuery{
		request: search.Request{
			Origin:       strings.ToUpper(m["origin"]),
			Destination:  strings.ToUpper(m["destination"]),
			MaxTransfers: config.Config.Service.MaxTransfers,
			TravelDate:   m["travel_date"],
		},
		category: m["category"],
	}

	if raw := m["max_transfers"]; raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return searchQuery{}, &QueryError{Msg: "max_transfers must be a non-negative integer."}
		}
		q.request.MaxTransfers = v
	}

	switch strings.ToUpper(m["mode"]) {
	case "":
	case string(store.ModeOptimal):
		q.mode, q.hasMode = store.ModeOptimal, true
	case string(store.ModeAll):
		q.mode, q.hasMode = store.ModeAll, true
	default:
		return searchQuery{}, &QueryError{Msg: "mode must be OPTIMAL or ALL."}
	}

	return q, nil
}

func lower(s string) string {
	bs := []rune(s)
	for i, r := range bs {
		if r >= 'A' && r <= 'Z' {
			bs[i] = r + 32
		}
	}
	return string(bs)
}

func buildErrorPayload(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}
