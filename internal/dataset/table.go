// Package dataset loads the launch records table and exposes it read-only.
package dataset

import (
	"iter"
	"math"

	"launchdash/internal/models"
)

// Table is the immutable, process-wide launch record collection. It is built
// once at startup and only ever read afterwards, so it is safe to share
// between concurrent requests without locking.
type Table struct {
	records []models.LaunchRecord
	sites   []string
	minKg   float64
	maxKg   float64
}

// FromRecords builds a Table from a copy of recs.
func FromRecords(recs []models.LaunchRecord) *Table {
	t := &Table{records: make([]models.LaunchRecord, len(recs))}
	copy(t.records, recs)

	seen := make(map[string]bool)
	t.minKg, t.maxKg = math.Inf(1), math.Inf(-1)
	for _, r := range t.records {
		if !seen[r.Site] {
			seen[r.Site] = true
			t.sites = append(t.sites, r.Site)
		}
		t.minKg = math.Min(t.minKg, r.PayloadMassKg)
		t.maxKg = math.Max(t.maxKg, r.PayloadMassKg)
	}
	if len(t.records) == 0 {
		t.minKg, t.maxKg = 0, 0
	}
	return t
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// All iterates over every record in dataset order.
func (t *Table) All() iter.Seq[models.LaunchRecord] {
	return func(yield func(models.LaunchRecord) bool) {
		for _, r := range t.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Sites returns the unique launch sites in order of first appearance.
func (t *Table) Sites() []string {
	out := make([]string, len(t.sites))
	copy(out, t.sites)
	return out
}

// HasSite reports whether any record was launched from site.
func (t *Table) HasSite(site string) bool {
	for _, s := range t.sites {
		if s == site {
			return true
		}
	}
	return false
}

// PayloadBounds returns the observed minimum and maximum payload mass.
func (t *Table) PayloadBounds() (float64, float64) {
	return t.minKg, t.maxKg
}

// FullRange returns a filter covering every site and the whole payload range.
func (t *Table) FullRange() models.FilterState {
	return models.FilterState{Site: models.AllSites, PayloadMin: t.minKg, PayloadMax: t.maxKg}
}

// SiteOption is one entry of the site selector.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteOptions returns the selector options: the all-sites entry first, then
// every site in dataset order.
func (t *Table) SiteOptions(allLabel string) []SiteOption {
	opts := make([]SiteOption, 0, len(t.sites)+1)
	opts = append(opts, SiteOption{Label: allLabel, Value: models.AllSites})
	for _, s := range t.sites {
		opts = append(opts, SiteOption{Label: s, Value: s})
	}
	return opts
}
