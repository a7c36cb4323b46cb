package normalizer

import (
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
)

// Normalize converts a raw route payload, in any supported shape, into the
// canonical SearchResultSet. Route and segment order is preserved exactly as
// received; the service's ranking is the ranking.
//
// Returns the result set together with the non-fatal warnings collected along
// the way. The error, when non-nil, is a *SchemaError: no known shape could
// make sense of the payload.
func Normalize(payload []byte) (*journey.SearchResultSet, *Warnings, error) {
	var env rawEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, nil, schemaErrorf("invalid JSON envelope: %v", err)
	}
	if env.OptimalRoutes == nil && env.AllGeneratedRoutes == nil {
		return nil, nil, schemaErrorf("neither optimal_routes nor all_generated_routes present")
	}

	warnings := NewWarnings()

	optimal, err := normalizeList(env.OptimalRoutes, "OPT_ROUTE_%02d", warnings)
	if err != nil {
		return nil, nil, err
	}
	all, err := normalizeList(env.AllGeneratedRoutes, "ALL_ROUTE_%03d", warnings)
	if err != nil {
		return nil, nil, err
	}

	rs := &journey.SearchResultSet{
		OptimalRoutes:      optimal,
		AllGeneratedRoutes: all,
	}
	if env.Metadata != nil {
		rs.Meta = journey.ResultMeta{
			Source:               env.Metadata.Source,
			Destination:          env.Metadata.Destination,
			TotalRoutesGenerated: env.Metadata.TotalRoutesGenerated,
			ParetoFrontSize:      env.Metadata.ParetoFrontSize,
			OptimalRoutesCount:   env.Metadata.OptimalRoutesCount,
		}
	}
	return rs, warnings, nil
}

// normalizeList handles one route list. Each route is discriminated on its
// own structural marker (the objectives sub-record) rather than on the list's
// first entry, so a payload mixing both generations still normalizes.
func normalizeList(raws []json.RawMessage, idPattern string, warnings *Warnings) ([]journey.Route, error) {
	routes := make([]journey.Route, 0, len(raws))
	for i, raw := range raws {
		var (
			route journey.Route
			err   error
		)
		if hasObjectives(raw) {
			route, err = normalizeNested(raw, warnings)
		} else {
			route, err = normalizeFlat(raw, warnings)
		}
		if err != nil {
			return nil, err
		}
		if route.RouteID == "" {
			route.RouteID = fmt.Sprintf(idPattern, i+1)
			warnings.Add(WarningNoRouteID, route.RouteID)
		}
		if len(route.Segments) == 0 {
			return nil, schemaErrorf("route %s has no segments", route.RouteID)
		}
		if route.Objectives.TransferCount != len(route.Segments)-1 {
			warnings.Add(WarningTransferCountMismatch, route.RouteID)
			route.Objectives.TransferCount = len(route.Segments) - 1
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func normalizeNested(raw json.RawMessage, warnings *Warnings) (journey.Route, error) {
	var nr nestedRoute
	if err := json.Unmarshal(raw, &nr); err != nil {
		return journey.Route{}, schemaErrorf("nested route: %v", err)
	}
	if nr.Objectives == nil {
		return journey.Route{}, schemaErrorf("nested route %s has no objectives", nr.RouteID)
	}

	route := journey.Route{
		RouteID:       nr.RouteID,
		CategoryLabel: nr.Category,
		Objectives: journey.Objectives{
			TotalTimeMin:       nr.Objectives.Time,
			TotalFare:          nr.Objectives.Cost,
			TransferCount:      nr.Objectives.Transfers,
			SeatProbabilityPct: nr.Objectives.SeatProb,
			SafetyScore:        nr.Objectives.SafetyScore,
			TotalDistanceKm:    nr.Objectives.Distance,
		},
		Segments: make([]journey.Segment, 0, len(nr.Segments)),
	}

	for _, ns := range nr.Segments {
		seg := journey.Segment{
			SegmentID:           ns.SegmentID.String(),
			CarrierLabel:        ns.Name,
			OriginCode:          ns.From,
			DestinationCode:     ns.To,
			DepartureTime:       ns.Departure,
			ArrivalTime:         ns.Arrival,
			DurationMin:         roundToInt(ns.DurationMin),
			WaitBeforeMin:       roundToInt(ns.WaitMin),
			SeatAvailabilityPct: ns.SeatAvailable,
		}
		switch ns.Type {
		case "train":
			seg.Mode = journey.ModeRail
		case "flight":
			seg.Mode = journey.ModeAir
		default:
			warnings.Add(WarningBadSegmentType, ns.SegmentID.String())
			seg.Mode = journey.ModeRail
		}
		if ns.Distance != nil {
			seg.DistanceKm = *ns.Distance
		} else {
			warnings.Add(WarningNoDistance, ns.SegmentID.String())
		}
		if ns.Cost != nil {
			seg.Fare = *ns.Cost
		} else {
			warnings.Add(WarningNoSegmentFare, ns.SegmentID.String())
		}
		route.Segments = append(route.Segments, seg)
	}
	return route, nil
}

func normalizeFlat(raw json.RawMessage, warnings *Warnings) (journey.Route, error) {
	var fr flatRoute
	if err := json.Unmarshal(raw, &fr); err != nil {
		return journey.Route{}, schemaErrorf("flat route: %v", err)
	}
	if fr.TotalTime == nil {
		// Neither shape matched: no objectives record and no flat totals.
		return journey.Route{}, schemaErrorf("route %s matches no known shape (no objectives, no totalTime)", routeIDOf(fr))
	}

	route := journey.Route{
		RouteID:       routeIDOf(fr),
		CategoryLabel: fr.Category,
		Objectives: journey.Objectives{
			TotalTimeMin:       *fr.TotalTime,
			TotalFare:          fr.TotalCost,
			TransferCount:      fr.TotalTransfers,
			SeatProbabilityPct: fr.SeatProbability,
			SafetyScore:        fr.SafetyScore,
		},
		Segments: make([]journey.Segment, 0, len(fr.Segments)),
	}
	if fr.TotalDistance != nil {
		route.Objectives.TotalDistanceKm = *fr.TotalDistance
	} else {
		warnings.Add(WarningNoDistance, route.RouteID)
	}

	for _, fs := range fr.Segments {
		// The flat generation predates flights: every segment is rail.
		seg := journey.Segment{
			Mode:            journey.ModeRail,
			SegmentID:       fs.TrainNumber.String(),
			CarrierLabel:    fs.TrainName,
			OriginCode:      fs.From,
			DestinationCode: fs.To,
			DepartureTime:   fs.Departure,
			ArrivalTime:     fs.Arrival,
			DurationMin:     roundToInt(fs.Duration),
			WaitBeforeMin:   roundToInt(fs.WaitBefore),
		}
		// Boolean availability carries less information than the probability
		// the current schema reports. 100/0 is the documented lossy mapping.
		if fs.SeatAvailable {
			seg.SeatAvailabilityPct = 100
		}
		warnings.Add(WarningBoolSeatShim, fs.TrainNumber.String())
		if fs.Distance != nil {
			seg.DistanceKm = *fs.Distance
		} else {
			warnings.Add(WarningNoDistance, fs.TrainNumber.String())
		}
		if fs.Cost != nil {
			seg.Fare = *fs.Cost
		} else {
			warnings.Add(WarningNoSegmentFare, fs.TrainNumber.String())
		}
		route.Segments = append(route.Segments, seg)
	}
	return route, nil
}

func routeIDOf(fr flatRoute) string {
	if fr.RouteID != "" {
		return fr.RouteID
	}
	return fr.ID
}
