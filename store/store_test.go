package store

import (
	"testing"

	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
)

func route(id, label string) journey.Route {
	return journey.Route{
		RouteID:       id,
		CategoryLabel: label,
		Segments: []journey.Segment{
			{Mode: journey.ModeRail, OriginCode: "A", DestinationCode: "B"},
		},
	}
}

func sampleSet() journey.SearchResultSet {
	return journey.SearchResultSet{
		OptimalRoutes: []journey.Route{
			route("OPT_ROUTE_01", "FASTEST ⚡"),
			route("OPT_ROUTE_02", "CHEAPEST 💰"),
			route("OPT_ROUTE_03", "FAST #1 ⚡"),
		},
		AllGeneratedRoutes: []journey.Route{
			route("ALL_ROUTE_001", "FASTEST ⚡"),
			route("ALL_ROUTE_002", "FAST #1 ⚡"),
			route("ALL_ROUTE_003", "FAST #2 ⚡"),
			route("ALL_ROUTE_004", "CHEAPEST 💰"),
			route("ALL_ROUTE_005", "OPTIMAL ALTERNATIVE 🎯"),
		},
	}
}

// TestSetResultSet_ModeSelection verifies OPTIMAL is preferred and an
// exhaustive-only set falls back to ALL so routes are never hidden.
func TestSetResultSet_ModeSelection(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	if s.DisplayMode() != ModeOptimal {
		t.Errorf("mode = %v; want OPTIMAL", s.DisplayMode())
	}

	s.SetResultSet(journey.SearchResultSet{
		AllGeneratedRoutes: []journey.Route{route("ALL_ROUTE_001", "FASTEST ⚡")},
	})
	if s.DisplayMode() != ModeAll {
		t.Errorf("empty optimal list should fall back to ALL, got %v", s.DisplayMode())
	}
	if len(s.VisibleRoutes()) != 1 {
		t.Errorf("fallback should expose the exhaustive list")
	}
}

// TestSetResultSet_ClearsFilter verifies a new result set never starts with a
// stale category filter.
func TestSetResultSet_ClearsFilter(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	s.SetCategoryFilter("FASTEST")
	s.SetResultSet(sampleSet())
	if _, filtered := s.CategoryFilter(); filtered {
		t.Error("installing a result set should clear the filter")
	}
}

// TestVisibleRoutes_FilterIsSubsequence verifies filtering keeps source order
// and drops non-matching routes only.
func TestVisibleRoutes_FilterIsSubsequence(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	s.SetDisplayMode(ModeAll)
	s.SetCategoryFilter("FAST")

	visible := s.VisibleRoutes()
	if len(visible) != 2 {
		t.Fatalf("got %d visible routes; want 2", len(visible))
	}
	if visible[0].RouteID != "ALL_ROUTE_002" || visible[1].RouteID != "ALL_ROUTE_003" {
		t.Errorf("filter broke ordering: %q, %q", visible[0].RouteID, visible[1].RouteID)
	}

	s.ClearCategoryFilter()
	if len(s.VisibleRoutes()) != 5 {
		t.Errorf("clearing the filter should restore the full list")
	}
}

// TestVisibleRoutes_FilterWithNoMatches verifies an empty filtered view is a
// valid state, not an error.
func TestVisibleRoutes_FilterWithNoMatches(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	s.SetCategoryFilter("GREENEST")
	if got := len(s.VisibleRoutes()); got != 0 {
		t.Errorf("got %d visible routes; want 0", got)
	}
}

// TestAvailableCategories verifies distinct keys come out in first-seen order
// and are not reduced by the active filter.
func TestAvailableCategories(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	s.SetDisplayMode(ModeAll)
	s.SetCategoryFilter("CHEAPEST")

	got := s.AvailableCategories()
	want := []journey.CategoryKey{"FASTEST", "FAST", "CHEAPEST", "OPTIMAL ALTERNATIVE"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v; want %v", got, want)
		}
	}
}

// TestReset verifies reset returns the store to its initial empty state.
func TestReset(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())
	s.SetCategoryFilter("FASTEST")
	s.Reset()

	if !s.ResultSet().Empty() {
		t.Error("reset store should be empty")
	}
	if s.DisplayMode() != ModeOptimal {
		t.Errorf("reset store should default to OPTIMAL, got %v", s.DisplayMode())
	}
	if _, filtered := s.CategoryFilter(); filtered {
		t.Error("reset store should have no filter")
	}
}

// TestRecommend verifies the recommendation appears only in the unfiltered
// OPTIMAL view and is always the first visible route.
func TestRecommend(t *testing.T) {
	s := NewResultStore()
	s.SetResultSet(sampleSet())

	id, ok := RecommendFrom(s)
	if !ok || id != "OPT_ROUTE_01" {
		t.Errorf("unfiltered OPTIMAL view: got (%q, %v); want (OPT_ROUTE_01, true)", id, ok)
	}

	s.SetDisplayMode(ModeAll)
	if _, ok := RecommendFrom(s); ok {
		t.Error("ALL view must not recommend")
	}

	s.SetDisplayMode(ModeOptimal)
	s.SetCategoryFilter("FASTEST")
	if _, ok := RecommendFrom(s); ok {
		t.Error("filtered view must not recommend")
	}

	s.Reset()
	if _, ok := RecommendFrom(s); ok {
		t.Error("empty store must not recommend")
	}
}
