package formatter

import (
	"github.com/theoremus-urban-solutions/routes-to-journeys/category"
	"github.com/theoremus-urban-solutions/routes-to-journeys/directory"
	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

// RouteView is one visible route with its derived presentation fields.
type RouteView struct {
	Route           journey.Route       `json:"route"`
	Category        journey.CategoryKey `json:"categoryKey"`
	Icon            string              `json:"icon,omitempty"`
	OriginName      string              `json:"originName"`
	DestinationName string              `json:"destinationName"`
	Recommended     bool                `json:"recommended"`
}

// ResultView is the full derived state of the store, ready to serialize or
// render: the visible route list plus the filter chrome around it.
type ResultView struct {
	DisplayMode        store.DisplayMode     `json:"displayMode"`
	CategoryFilter     journey.CategoryKey   `json:"categoryFilter,omitempty"`
	Categories         []journey.CategoryKey `json:"categories"`
	Routes             []RouteView           `json:"routes"`
	RecommendedRouteID string                `json:"recommendedRouteId,omitempty"`
}

// BuildView derives the displayable view from the store's current state,
// resolving endpoint display names through the location directory.
func BuildView(s *store.ResultStore, dir directory.Directory) ResultView {
	visible := s.VisibleRoutes()
	filter, filtered := s.CategoryFilter()

	view := ResultView{
		DisplayMode: s.DisplayMode(),
		Categories:  s.AvailableCategories(),
		Routes:      make([]RouteView, 0, len(visible)),
	}
	if filtered {
		view.CategoryFilter = filter
	}

	recommendedID, hasRec := store.Recommend(visible, s.DisplayMode(), filtered)
	if hasRec {
		view.RecommendedRouteID = recommendedID
	}

	for _, r := range visible {
		key := category.Classify(r.CategoryLabel)
		view.Routes = append(view.Routes, RouteView{
			Route:           r,
			Category:        key,
			Icon:            category.Icon(key),
			OriginName:      directory.DisplayName(dir, r.Origin()),
			DestinationName: directory.DisplayName(dir, r.Destination()),
			Recommended:     hasRec && r.RouteID == recommendedID,
		})
	}
	return view
}
