package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/routes-to-journeys/directory"
	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

func testSet() journey.SearchResultSet {
	seg := func(from, to string) journey.Segment {
		return journey.Segment{
			Mode: journey.ModeRail, SegmentID: "12951", CarrierLabel: "Rajdhani",
			OriginCode: from, DestinationCode: to,
			DepartureTime: "06:10", ArrivalTime: "13:35",
			DistanceKm: 612, DurationMin: 445, Fare: 1250, SeatAvailabilityPct: 72,
		}
	}
	return journey.SearchResultSet{
		OptimalRoutes: []journey.Route{
			{
				RouteID: "OPT_ROUTE_01", CategoryLabel: "FASTEST ⚡",
				Objectives: journey.Objectives{TotalTimeMin: 445, TotalFare: 1250, SeatProbabilityPct: 72, SafetyScore: 8.4, TotalDistanceKm: 612},
				Segments:   []journey.Segment{seg("NDLS", "BCT")},
			},
			{
				RouteID: "OPT_ROUTE_02", CategoryLabel: "CHEAPEST 💰",
				Objectives: journey.Objectives{TotalTimeMin: 720, TotalFare: 640},
				Segments:   []journey.Segment{seg("NDLS", "BCT")},
			},
		},
	}
}

// TestBuildView verifies derived presentation: classified categories, resolved
// endpoint names, and the recommended flag on exactly the first optimal route.
func TestBuildView(t *testing.T) {
	s := store.NewResultStore()
	s.SetResultSet(testSet())

	view := BuildView(s, directory.Static())

	if view.DisplayMode != store.ModeOptimal {
		t.Errorf("mode = %v", view.DisplayMode)
	}
	if len(view.Routes) != 2 {
		t.Fatalf("got %d routes", len(view.Routes))
	}
	if view.RecommendedRouteID != "OPT_ROUTE_01" {
		t.Errorf("recommended = %q", view.RecommendedRouteID)
	}
	if !view.Routes[0].Recommended || view.Routes[1].Recommended {
		t.Error("exactly the first route should be marked recommended")
	}
	if view.Routes[0].Category != "FASTEST" {
		t.Errorf("category key = %q", view.Routes[0].Category)
	}
	if view.Routes[0].OriginName == "NDLS" {
		t.Error("origin name should resolve through the directory")
	}
	if len(view.Categories) != 2 {
		t.Errorf("categories = %v", view.Categories)
	}
}

// TestBuildView_FilteredHasNoRecommendation verifies the filtered view drops
// the highlight along with the non-matching routes.
func TestBuildView_FilteredHasNoRecommendation(t *testing.T) {
	s := store.NewResultStore()
	s.SetResultSet(testSet())
	s.SetCategoryFilter("CHEAPEST")

	view := BuildView(s, directory.Static())
	if view.RecommendedRouteID != "" {
		t.Errorf("filtered view must not recommend, got %q", view.RecommendedRouteID)
	}
	if len(view.Routes) != 1 || view.Routes[0].Route.RouteID != "OPT_ROUTE_02" {
		t.Errorf("filtered routes = %+v", view.Routes)
	}
	if view.CategoryFilter != "CHEAPEST" {
		t.Errorf("filter = %q", view.CategoryFilter)
	}
}

// TestBuildJSON verifies the serialized view round-trips and keeps the
// presentation fields.
func TestBuildJSON(t *testing.T) {
	s := store.NewResultStore()
	s.SetResultSet(testSet())

	b := NewResponseBuilder().BuildJSON(BuildView(s, directory.Static()))

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["displayMode"] != "OPTIMAL" {
		t.Errorf("displayMode = %v", decoded["displayMode"])
	}
	if decoded["recommendedRouteId"] != "OPT_ROUTE_01" {
		t.Errorf("recommendedRouteId = %v", decoded["recommendedRouteId"])
	}
}

// TestRenderCards verifies the terminal rendering carries the label, the
// recommendation tag, and the formatted fare.
func TestRenderCards(t *testing.T) {
	s := store.NewResultStore()
	s.SetResultSet(testSet())

	out := RenderCards(BuildView(s, directory.Static()))
	for _, want := range []string{"FASTEST ⚡", "RECOMMENDED", "₹1,250", "7h 25m"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered cards missing %q", want)
		}
	}

	empty := RenderCards(ResultView{})
	if !strings.Contains(empty, "No routes to display.") {
		t.Errorf("empty view rendering = %q", empty)
	}
}
