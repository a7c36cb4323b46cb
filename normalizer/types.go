package normalizer

import (
	"encoding/json"
	"math"
)

// Raw payload shapes observed from the route optimization service. The
// envelope keys are stable across schema generations; the per-route shape is
// not. Unknown extra fields are ignored by the JSON decoder on purpose.

type rawEnvelope struct {
	Metadata           *rawMetadata      `json:"metadata"`
	OptimalRoutes      []json.RawMessage `json:"optimal_routes"`
	AllGeneratedRoutes []json.RawMessage `json:"all_generated_routes"`
}

type rawMetadata struct {
	Source               string `json:"source"`
	Destination          string `json:"destination"`
	TotalRoutesGenerated int    `json:"total_routes_generated"`
	ParetoFrontSize      int    `json:"pareto_front_size"`
	OptimalRoutesCount   int    `json:"optimal_routes_count"`
}

// nested shape: route carries an objectives sub-record, segments carry a
// type discriminator and numeric seat availability.

type nestedRoute struct {
	RouteID    string          `json:"route_id"`
	Category   string          `json:"category"`
	Objectives *rawObjectives  `json:"objectives"`
	Segments   []nestedSegment `json:"segments"`
}

type rawObjectives struct {
	Time        float64 `json:"time"`
	Cost        float64 `json:"cost"`
	Transfers   int     `json:"transfers"`
	SeatProb    float64 `json:"seat_prob"`
	SafetyScore float64 `json:"safety_score"`
	Distance    float64 `json:"distance"`
}

type nestedSegment struct {
	Type          string   `json:"type"`
	SegmentID     flexID   `json:"segment_id"`
	Name          string   `json:"name"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Departure     string   `json:"departure"`
	Arrival       string   `json:"arrival"`
	Distance      *float64 `json:"distance"`
	DurationMin   float64  `json:"duration_min"`
	WaitMin       float64  `json:"wait_min"`
	Cost          *float64 `json:"cost"`
	SeatAvailable float64  `json:"seat_available"`
}

// flat shape: the rail-only generation. Objective totals sit directly on the
// route and seat availability is a boolean.

type flatRoute struct {
	RouteID         string        `json:"route_id"`
	ID              string        `json:"id"`
	Category        string        `json:"category"`
	TotalTime       *float64      `json:"totalTime"`
	TotalCost       float64       `json:"totalCost"`
	TotalTransfers  int           `json:"totalTransfers"`
	SeatProbability float64       `json:"seatProbability"`
	SafetyScore     float64       `json:"safetyScore"`
	TotalDistance   *float64      `json:"totalDistance"`
	Segments        []flatSegment `json:"segments"`
}

type flatSegment struct {
	TrainNumber   flexID   `json:"trainNumber"`
	TrainName     string   `json:"trainName"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Departure     string   `json:"departure"`
	Arrival       string   `json:"arrival"`
	Distance      *float64 `json:"distance"`
	Duration      float64  `json:"duration"`
	WaitBefore    float64  `json:"waitBefore"`
	Cost          *float64 `json:"cost"`
	SeatAvailable bool     `json:"seatAvailable"`
}

// flexID tolerates identifiers encoded as either JSON strings or numbers;
// both have been observed from the service.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

// hasObjectives probes a raw route object for the nested-shape discriminator
// without committing to a full decode.
func hasObjectives(raw json.RawMessage) bool {
	var probe struct {
		Objectives json.RawMessage `json:"objectives"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return len(probe.Objectives) > 0 && string(probe.Objectives) != "null"
}

func roundToInt(f float64) int {
	if f < 0 {
		return 0
	}
	return int(math.Round(f))
}
