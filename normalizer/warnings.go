package normalizer

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningNoRouteID             = "no_route_id"
	WarningNoDistance            = "no_distance"
	WarningNoSegmentFare         = "no_segment_fare"
	WarningBoolSeatShim          = "bool_seat_shim"
	WarningBadSegmentType        = "bad_segment_type"
	WarningTransferCountMismatch = "transfer_count_mismatch"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// Warnings collects non-fatal findings during normalization and outputs
// consolidated summaries. Findings here never fail the payload: the route is
// still produced, with the documented fallback applied.
type Warnings struct {
	warnings map[string]*warningInfo
	order    []string
}

// NewWarnings creates an empty aggregator
func NewWarnings() *Warnings {
	return &Warnings{warnings: make(map[string]*warningInfo)}
}

// Add records a warning occurrence with an example ID
func (w *Warnings) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
		w.order = append(w.order, warningType)
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Total returns the number of warning occurrences across all types.
func (w *Warnings) Total() int {
	n := 0
	for _, info := range w.warnings {
		n += info.count
	}
	return n
}

// Has reports whether at least one warning of the given type was recorded.
func (w *Warnings) Has(warningType string) bool {
	return w.warnings[warningType] != nil
}

// LogAll outputs all collected warnings in consolidated format, in the order
// the types were first seen.
func (w *Warnings) LogAll(searchID string) {
	for _, warningType := range w.order {
		log.Printf("%s", w.formatWarningMessage(warningType, searchID, w.warnings[warningType]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *Warnings) formatWarningMessage(warningType, searchID string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoRouteID:
		description = "routes with no route_id"
		action = "Synthesized sequential route IDs"
	case WarningNoDistance:
		description = "missing distance fields"
		action = "Normalized with distance 0"
	case WarningNoSegmentFare:
		description = "segments with no per-segment fare"
		action = "Normalized with fare 0"
	case WarningBoolSeatShim:
		description = "boolean seat availability from the legacy flat schema"
		action = "Mapped true/false to 100/0 percent (known precision loss)"
	case WarningBadSegmentType:
		description = "segments with an unrecognized type"
		action = "Normalized as RAIL"
	case WarningTransferCountMismatch:
		description = "routes whose transfer count disagrees with segment count"
		action = "Derived transfer count from segments"
	default:
		description = "unknown issue"
		action = "Normalized with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Search %s: payload has %s (%d occurrences). %s. Examples: %s",
		searchID, description, info.count, action, examplesStr)
}
