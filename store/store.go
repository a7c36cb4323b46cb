package store

import (
	"github.com/theoremus-urban-solutions/routes-to-journeys/category"
	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
)

// DisplayMode selects which of the two result lists is shown.
type DisplayMode string

const (
	// ModeOptimal shows the upstream-ranked Pareto-optimal set.
	ModeOptimal DisplayMode = "OPTIMAL"
	// ModeAll shows the exhaustive candidate pool.
	ModeAll DisplayMode = "ALL"
)

// ResultStore exclusively owns the current SearchResultSet and the current
// display mode and category filter. The search orchestrator replaces the
// result set wholesale; nothing mutates an installed set in place.
//
// Not safe for concurrent use. The pipeline runs on one logical thread of
// control and the orchestrator serializes access.
type ResultStore struct {
	current        journey.SearchResultSet
	displayMode    DisplayMode
	categoryFilter journey.CategoryKey
	hasFilter      bool
}

// NewResultStore returns a store holding an empty result set.
func NewResultStore() *ResultStore {
	return &ResultStore{displayMode: ModeOptimal}
}

// SetResultSet installs a fresh result set, clears any category filter, and
// picks the display mode: OPTIMAL when the optimal list is non-empty,
// otherwise ALL, so an exhaustive-only response never renders an empty screen.
func (s *ResultStore) SetResultSet(rs journey.SearchResultSet) {
	s.current = rs
	s.hasFilter = false
	s.categoryFilter = ""
	if len(rs.OptimalRoutes) > 0 {
		s.displayMode = ModeOptimal
	} else {
		s.displayMode = ModeAll
	}
}

// Reset discards the current result set, equivalent to "no results".
func (s *ResultStore) Reset() {
	s.SetResultSet(journey.SearchResultSet{})
	s.displayMode = ModeOptimal
}

// SetDisplayMode switches between the optimal and exhaustive lists.
func (s *ResultStore) SetDisplayMode(mode DisplayMode) {
	s.displayMode = mode
}

// DisplayMode returns the currently selected mode.
func (s *ResultStore) DisplayMode() DisplayMode {
	return s.displayMode
}

// SetCategoryFilter restricts the visible routes to one classified category.
func (s *ResultStore) SetCategoryFilter(key journey.CategoryKey) {
	s.categoryFilter = key
	s.hasFilter = true
}

// ClearCategoryFilter removes the category restriction.
func (s *ResultStore) ClearCategoryFilter() {
	s.categoryFilter = ""
	s.hasFilter = false
}

// CategoryFilter returns the active filter, if any.
func (s *ResultStore) CategoryFilter() (journey.CategoryKey, bool) {
	return s.categoryFilter, s.hasFilter
}

// ResultSet returns the currently installed result set.
func (s *ResultStore) ResultSet() journey.SearchResultSet {
	return s.current
}

// sourceRoutes is the mode-selected, pre-filter list.
func (s *ResultStore) sourceRoutes() []journey.Route {
	if s.displayMode == ModeAll {
		return s.current.AllGeneratedRoutes
	}
	return s.current.OptimalRoutes
}

// VisibleRoutes derives the list to display: the mode-selected list, reduced
// to the filtered category when a filter is set. The result is always a
// subsequence of the source list; filtering never fabricates or reorders.
func (s *ResultStore) VisibleRoutes() []journey.Route {
	src := s.sourceRoutes()
	if !s.hasFilter {
		return src
	}
	visible := make([]journey.Route, 0, len(src))
	for _, r := range src {
		if category.Classify(r.CategoryLabel) == s.categoryFilter {
			visible = append(visible, r)
		}
	}
	return visible
}

// AvailableCategories returns the distinct classified categories present in
// the mode-selected list, in first-seen order. The active category filter
// does not reduce this list; it is what the filter chooses from.
func (s *ResultStore) AvailableCategories() []journey.CategoryKey {
	seen := make(map[journey.CategoryKey]bool)
	var keys []journey.CategoryKey
	for _, r := range s.sourceRoutes() {
		key := category.Classify(r.CategoryLabel)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}
