// Package validation parses and checks dashboard filter parameters coming
// from the web layer.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvertedRange = errors.New("payload minimum exceeds maximum")
)

// FilterParams are the raw control values as received over HTTP.
type FilterParams struct {
	Site string
	Min  string
	Max  string
}

// ParseFilter builds a FilterState from raw parameters. A blank site selects
// every site and blank bounds default to [lo, hi].
// Unknown sites are accepted: they simply match no records.
func ParseFilter(p FilterParams, lo, hi float64) (models.FilterState, error) {
	minKg, err := parseBound("min", p.Min)
	if err != nil {
		return models.FilterState{}, err
	}
	maxKg, err := parseBound("max", p.Max)
	if err != nil {
		return models.FilterState{}, err
	}
	return BuildFilter(p.Site, minKg, maxKg, lo, hi)
}

// BuildFilter applies the filter rules to already decoded values. Nil bounds
// default to [lo, hi].
func BuildFilter(site string, minKg, maxKg *float64, lo, hi float64) (models.FilterState, error) {
	f := models.FilterState{
		Site:       strings.TrimSpace(site),
		PayloadMin: lo,
		PayloadMax: hi,
	}
	if f.Site == "" {
		f.Site = models.AllSites
	}
	if minKg != nil {
		if !finite(*minKg) {
			return f, fmt.Errorf("%w for min: %v", ErrInvalidNumber, *minKg)
		}
		f.PayloadMin = *minKg
	}
	if maxKg != nil {
		if !finite(*maxKg) {
			return f, fmt.Errorf("%w for max: %v", ErrInvalidNumber, *maxKg)
		}
		f.PayloadMax = *maxKg
	}
	if !f.Valid() {
		return f, fmt.Errorf("%w: %g > %g", ErrInvertedRange, f.PayloadMin, f.PayloadMax)
	}
	return f, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseBound(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !finite(v) {
		return nil, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, name, raw)
	}
	return &v, nil
}

// ParseChanged splits a comma-separated list of changed control IDs,
// dropping blanks.
func ParseChanged(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
