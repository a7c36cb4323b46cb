package store

import "github.com/theoremus-urban-solutions/routes-to-journeys/journey"

// Recommend picks at most one route to mark as recommended.
//
// A recommendation is produced only in the unfiltered OPTIMAL view, where
// upstream's ordering is a genuine ranking signal: it is the first visible
// route. The exhaustive pool and category-filtered views carry no ranking
// guarantee from upstream, so no route is highlighted there. The selector
// performs no scoring of its own.
func Recommend(visible []journey.Route, mode DisplayMode, filtered bool) (string, bool) {
	if mode != ModeOptimal || filtered || len(visible) == 0 {
		return "", false
	}
	return visible[0].RouteID, true
}

// RecommendFrom applies Recommend to a store's current view.
func RecommendFrom(s *ResultStore) (string, bool) {
	_, filtered := s.CategoryFilter()
	return Recommend(s.VisibleRoutes(), s.DisplayMode(), filtered)
}
