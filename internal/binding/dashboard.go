package binding

import (
	"launchdash/internal/dataset"
	"launchdash/internal/derive"
	"launchdash/internal/models"
)

// NewDashboard registers the two dashboard charts against table.
func NewDashboard(table *dataset.Table, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)

	if err := r.Register(Callback{
		Output: derive.ProportionChartID,
		Inputs: []string{SiteInput},
		Derive: func(f models.FilterState) models.ChartSpec {
			return derive.OutcomeProportion(table, f.Site)
		},
	}); err != nil {
		return nil, err
	}

	if err := r.Register(Callback{
		Output: derive.ScatterChartID,
		Inputs: []string{SiteInput, PayloadInput},
		Derive: func(f models.FilterState) models.ChartSpec {
			return derive.PayloadScatter(table, f)
		},
	}); err != nil {
		return nil, err
	}

	return r, nil
}
