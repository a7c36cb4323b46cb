package routestojourneys

import (
	"encoding/json"
	"testing"

	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

// TestParseAndValidateSearch verifies casing normalization, defaults, and the
// optional mode parameter.
func TestParseAndValidateSearch(t *testing.T) {
	origConfig := config.Config
	t.Cleanup(func() { config.Config = origConfig })
	config.Config.Service.MaxTransfers = 3

	q, err := parseAndValidateSearch(map[string]string{
		"Origin":      " pgt ",
		"DESTINATION": "kota",
		"mode":        "all",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.request.Origin != "PGT" || q.request.Destination != "KOTA" {
		t.Errorf("codes = %q/%q; want PGT/KOTA", q.request.Origin, q.request.Destination)
	}
	if q.request.MaxTransfers != 3 {
		t.Errorf("max transfers should default from config, got %d", q.request.MaxTransfers)
	}
	if !q.hasMode || q.mode != store.ModeAll {
		t.Errorf("mode = %v/%v", q.mode, q.hasMode)
	}
}

// TestParseAndValidateSearch_Rejects verifies malformed parameters come back
// as QueryError.
func TestParseAndValidateSearch_Rejects(t *testing.T) {
	cases := []map[string]string{
		{"origin": "PGT", "destination": "KOTA", "max_transfers": "many"},
		{"origin": "PGT", "destination": "KOTA", "max_transfers": "-1"},
		{"origin": "PGT", "destination": "KOTA", "mode": "BEST"},
	}
	for _, params := range cases {
		if _, err := parseAndValidateSearch(params); err == nil {
			t.Errorf("params %v should be rejected", params)
		} else if _, ok := err.(*QueryError); !ok {
			t.Errorf("params %v: error = %T; want *QueryError", params, err)
		}
	}
}

// TestBuildErrorPayload verifies the error envelope shape.
func TestBuildErrorPayload(t *testing.T) {
	var decoded map[string]string
	if err := json.Unmarshal(buildErrorPayload("boom"), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded["error"] != "boom" {
		t.Errorf("envelope = %v", decoded)
	}
}
