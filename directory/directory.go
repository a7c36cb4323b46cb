package directory

import "strings"

// Station is one entry of the location directory.
type Station struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Region string `json:"state"`
}

// Directory resolves location codes to display information. Lookups for
// unknown codes report not-found instead of failing; callers fall back to the
// raw code.
type Directory interface {
	Lookup(code string) (Station, bool)
	Search(query string) []Station
}

const maxSearchResults = 10

// StaticDirectory serves lookups from an in-memory station table.
type StaticDirectory struct {
	stations []Station
	byCode   map[string]Station
}

// New builds a directory over the given station table.
func New(stations []Station) *StaticDirectory {
	byCode := make(map[string]Station, len(stations))
	for _, s := range stations {
		byCode[strings.ToUpper(s.Code)] = s
	}
	return &StaticDirectory{stations: stations, byCode: byCode}
}

// Static returns the compiled-in station table.
func Static() *StaticDirectory {
	return New(stations)
}

// All returns the whole station table in its published order.
func (d *StaticDirectory) All() []Station {
	return d.stations
}

// Lookup resolves a location code, case-insensitively.
func (d *StaticDirectory) Lookup(code string) (Station, bool) {
	s, ok := d.byCode[strings.ToUpper(code)]
	return s, ok
}

// Search matches code, name, and city case-insensitively, capped at 10
// results in table order.
func (d *StaticDirectory) Search(query string) []Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Station
	for _, s := range d.stations {
		if strings.Contains(strings.ToLower(s.Code), q) ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.City), q) {
			out = append(out, s)
			if len(out) == maxSearchResults {
				break
			}
		}
	}
	return out
}

// DisplayName resolves a code to its display name, degrading to the raw code
// when the directory does not know it.
func DisplayName(d Directory, code string) string {
	if s, ok := d.Lookup(code); ok {
		return s.Name
	}
	return code
}
