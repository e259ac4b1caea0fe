package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Dashboard holds presentation settings that are easier to manage in YAML
// than in environment variables.
type Dashboard struct {
	AllSitesLabel string            `yaml:"all_sites_label"`
	Slider        SliderConfig      `yaml:"slider"`
	Colors        map[string]string `yaml:"colors"` // colour name or label -> hex
}

// SliderConfig configures the payload range control.
type SliderConfig struct {
	Step  float64   `yaml:"step"`
	Marks []float64 `yaml:"marks,omitempty"` // empty means evenly spaced over the data
}

// DefaultDashboard returns the settings used when no YAML file is present.
func DefaultDashboard() *Dashboard {
	return &Dashboard{
		AllSitesLabel: "All Sites",
		Slider:        SliderConfig{Step: 1000},
	}
}

// LoadDashboard loads the YAML dashboard file at path. A missing file yields
// the defaults.
func LoadDashboard(path string) (*Dashboard, error) {
	cfg := DefaultDashboard()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Set defaults
	if cfg.AllSitesLabel == "" {
		cfg.AllSitesLabel = "All Sites"
	}
	if cfg.Slider.Step <= 0 {
		cfg.Slider.Step = 1000
	}

	return cfg, nil
}

// SliderBounds returns the range control's bounds for the observed payload
// range [lo, hi]. Range inputs snap to lo + k*step, so hi is rounded up to
// the next grid point to keep the heaviest payload selectable.
func (d *Dashboard) SliderBounds(lo, hi float64) (float64, float64) {
	step := d.Slider.Step
	if step <= 0 || hi <= lo {
		return lo, hi
	}
	n := math.Ceil((hi-lo)/step - 1e-9)
	return lo, lo + n*step
}

// Marks returns the slider marks for the payload range [lo, hi]. Configured
// marks outside the range are dropped; without configured marks five evenly
// spaced marks are produced.
func (d *Dashboard) Marks(lo, hi float64) []float64 {
	if len(d.Slider.Marks) > 0 {
		var out []float64
		for _, m := range d.Slider.Marks {
			if m >= lo && m <= hi {
				out = append(out, m)
			}
		}
		return out
	}
	if hi <= lo {
		return []float64{lo}
	}
	const n = 5
	out := make([]float64, n)
	for i := range n {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}
