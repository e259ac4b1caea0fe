// Package derive computes chart specifications from the launch table.
// Every function here is pure: it reads the table and returns a fresh spec.
package derive

import (
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Chart identifiers, shared with the page controls.
const (
	ProportionChartID = "success-pie-chart"
	ScatterChartID    = "success-payload-scatter-chart"
)

// Outcome colours for the single-site proportion chart.
const (
	ColorSuccess = "lightgreen"
	ColorFailure = "red"
)

// OutcomeProportion builds the proportion chart for site. For AllSites it has
// one segment per site valued by that site's success count. For a single site
// it has a Success and a Failure segment, or no segments when the site has no
// launches.
func OutcomeProportion(t *dataset.Table, site string) models.ChartSpec {
	f := models.FilterState{Site: site}
	if f.IsAllSites() {
		return successesBySite(t)
	}

	var success, failure int
	for r := range t.All() {
		if r.Site != site {
			continue
		}
		if r.Success {
			success++
		} else {
			failure++
		}
	}

	spec := models.ChartSpec{
		ID:    ProportionChartID,
		Kind:  models.KindPie,
		Title: "Total Successful Launches for site " + site,
		Colors: map[string]string{
			models.OutcomeSuccess: ColorSuccess,
			models.OutcomeFailure: ColorFailure,
		},
	}
	if success+failure == 0 {
		return spec
	}
	spec.Segments = []models.Segment{
		{Label: models.OutcomeSuccess, Value: float64(success), Color: ColorSuccess},
		{Label: models.OutcomeFailure, Value: float64(failure), Color: ColorFailure},
	}
	return spec
}

func successesBySite(t *dataset.Table) models.ChartSpec {
	counts := make(map[string]int)
	for r := range t.All() {
		counts[r.Site] += r.Class()
	}

	spec := models.ChartSpec{
		ID:    ProportionChartID,
		Kind:  models.KindPie,
		Title: "Total Success Launches By Site",
	}
	for _, site := range t.Sites() {
		spec.Segments = append(spec.Segments, models.Segment{
			Label: site,
			Value: float64(counts[site]),
		})
	}
	return spec
}

// PayloadScatter builds the payload-vs-outcome scatter for the records that
// match the filter's site and fall inside its payload range, bounds included.
func PayloadScatter(t *dataset.Table, f models.FilterState) models.ChartSpec {
	spec := models.ChartSpec{
		ID:     ScatterChartID,
		Kind:   models.KindScatter,
		Title:  "Correlation between Payload and Success for All Sites",
		XLabel: "Payload Mass (kg)",
		YLabel: "class",
		XRange: &models.Range{Min: f.PayloadMin, Max: f.PayloadMax},
	}
	if !f.IsAllSites() {
		spec.Title = "Correlation between Payload and Success for Site " + f.Site
	}

	for r := range t.All() {
		if !f.MatchesSite(r.Site) || !f.Contains(r.PayloadMassKg) {
			continue
		}
		spec.Points = append(spec.Points, models.Point{
			X:        r.PayloadMassKg,
			Y:        float64(r.Class()),
			Category: r.BoosterCategory,
		})
	}
	return spec
}
