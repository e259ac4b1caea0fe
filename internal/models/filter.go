package models

// FilterState holds the current values of the dashboard controls.
type FilterState struct {
	Site       string  `json:"site"`
	PayloadMin float64 `json:"min"`
	PayloadMax float64 `json:"max"`
}

// IsAllSites reports whether the filter selects every site.
func (f FilterState) IsAllSites() bool {
	return f.Site == "" || f.Site == AllSites
}

// MatchesSite reports whether a record from site passes the site filter.
func (f FilterState) MatchesSite(site string) bool {
	return f.IsAllSites() || f.Site == site
}

// Contains reports whether payload lies within [PayloadMin, PayloadMax].
func (f FilterState) Contains(payload float64) bool {
	return payload >= f.PayloadMin && payload <= f.PayloadMax
}

// Valid reports whether the payload range is well-formed.
func (f FilterState) Valid() bool {
	return f.PayloadMin <= f.PayloadMax
}
