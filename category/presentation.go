package category

import "github.com/theoremus-urban-solutions/routes-to-journeys/journey"

// Presentation lookups keyed by classified category. These exist only for
// icon/colour display; equality grouping always goes through Classify.

var categoryIcons = map[journey.CategoryKey]string{
	"FASTEST":             "⚡",
	"FAST":                "⚡",
	"CHEAPEST":            "💰",
	"CHEAP":               "💰",
	"MOST DIRECT":         "🚂",
	"BEST SEATS":          "💺",
	"SAFEST":              "🛡️",
	"BALANCED":            "⚖️",
	"OPTIMAL ALTERNATIVE": "🎯",
	"BEST MULTIMODAL":     "✈️+🚂",
	"MULTIMODAL":          "✈️+🚂",
}

var categoryColors = map[journey.CategoryKey]string{
	"FASTEST":             "#f59e0b",
	"FAST":                "#f97316",
	"CHEAPEST":            "#10b981",
	"CHEAP":               "#34d399",
	"MOST DIRECT":         "#3b82f6",
	"BEST SEATS":          "#22c55e",
	"SAFEST":              "#14b8a6",
	"BALANCED":            "#a855f7",
	"OPTIMAL ALTERNATIVE": "#64748b",
	"BEST MULTIMODAL":     "#0ea5e9",
	"MULTIMODAL":          "#0ea5e9",
}

// Icon returns the display glyph for a category key, empty when unknown.
func Icon(key journey.CategoryKey) string {
	return categoryIcons[key]
}

// Color returns the display colour (hex) for a category key, with a neutral
// fallback for categories this build has never seen.
func Color(key journey.CategoryKey) string {
	if c, ok := categoryColors[key]; ok {
		return c
	}
	return "#64748b"
}
