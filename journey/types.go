package journey

import "fmt"

// Mode identifies the vehicle kind of a segment.
type Mode string

const (
	ModeRail Mode = "RAIL"
	ModeAir  Mode = "AIR"
)

// CategoryKey is the canonical grouping key derived from a route's decorated
// category label. Two labels belong to the same category iff their keys are
// string-equal.
type CategoryKey string

// CategoryOther is the sentinel key for labels that strip down to nothing.
const CategoryOther CategoryKey = "OTHER"

// Segment is one leg of travel on a single vehicle.
//
// DepartureTime and ArrivalTime are local wall-clock time-of-day strings; no
// timezone or date-rollover semantics are modeled. An arrival that is
// numerically earlier than its departure means the segment crosses midnight
// and is not an error.
type Segment struct {
	Mode            Mode    `json:"mode"`
	SegmentID       string  `json:"segment_id"`
	CarrierLabel    string  `json:"name"`
	OriginCode      string  `json:"from"`
	DestinationCode string  `json:"to"`
	DepartureTime   string  `json:"departure"`
	ArrivalTime     string  `json:"arrival"`
	DistanceKm      float64 `json:"distance"`
	DurationMin     int     `json:"duration_min"`
	WaitBeforeMin   int     `json:"wait_min"`
	Fare            float64 `json:"cost"`
	// SeatAvailabilityPct is a probability in [0,100], not a boolean, even
	// though one historical upstream schema encoded it as one.
	SeatAvailabilityPct float64 `json:"seat_available"`
}

// Objectives is the multi-criteria scoring bundle attached to a route.
// The values are computed upstream and never recomputed here.
type Objectives struct {
	TotalTimeMin       float64 `json:"time"`
	TotalFare          float64 `json:"cost"`
	TransferCount      int     `json:"transfers"`
	SeatProbabilityPct float64 `json:"seat_prob"`
	SafetyScore        float64 `json:"safety_score"`
	TotalDistanceKm    float64 `json:"distance"`
}

// Route is one complete itinerary: one or more segments in travel order.
type Route struct {
	RouteID       string     `json:"route_id"`
	CategoryLabel string     `json:"category"`
	Objectives    Objectives `json:"objectives"`
	Segments      []Segment  `json:"segments"`
}

// Validate checks the structural invariants of a normalized route.
func (r *Route) Validate() error {
	if len(r.Segments) == 0 {
		return fmt.Errorf("route %s has no segments", r.RouteID)
	}
	if r.Objectives.TransferCount != len(r.Segments)-1 {
		return fmt.Errorf("route %s transfer count %d does not match %d segments",
			r.RouteID, r.Objectives.TransferCount, len(r.Segments))
	}
	return nil
}

// Origin returns the journey origin code (first segment's origin).
func (r *Route) Origin() string {
	if len(r.Segments) == 0 {
		return ""
	}
	return r.Segments[0].OriginCode
}

// Destination returns the journey destination code (last segment's destination).
func (r *Route) Destination() string {
	if len(r.Segments) == 0 {
		return ""
	}
	return r.Segments[len(r.Segments)-1].DestinationCode
}

// ResultMeta is the advisory metadata block some payloads carry.
type ResultMeta struct {
	Source               string `json:"source"`
	Destination          string `json:"destination"`
	TotalRoutesGenerated int    `json:"total_routes_generated"`
	ParetoFrontSize      int    `json:"pareto_front_size"`
	OptimalRoutesCount   int    `json:"optimal_routes_count"`
}

// SearchResultSet is the outcome of one search transaction. Route ordering is
// significant: element 0 of OptimalRoutes is upstream's top pick. A result set
// is installed wholesale and never mutated in place.
type SearchResultSet struct {
	Meta               ResultMeta
	OptimalRoutes      []Route
	AllGeneratedRoutes []Route
}

// Empty reports whether the set contains no routes at all.
func (rs SearchResultSet) Empty() bool {
	return len(rs.OptimalRoutes) == 0 && len(rs.AllGeneratedRoutes) == 0
}
