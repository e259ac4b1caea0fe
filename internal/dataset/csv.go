package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

// Column names in the source CSV.
const (
	ColLaunchSite      = "Launch Site"
	ColPayloadMass     = "Payload Mass (kg)"
	ColClass           = "class"
	ColBoosterCategory = "Booster Version Category"
	ColFlightNumber    = "Flight Number"
	ColBoosterVersion  = "Booster Version"
)

var requiredColumns = []string{ColLaunchSite, ColPayloadMass, ColClass, ColBoosterCategory}

// LoadFile reads the dataset from a CSV file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Load parses CSV launch records from r. The header row must contain every
// required column; other columns are ignored.
func Load(r io.Reader) (*Table, error) {
	recs, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmpty
	}
	return FromRecords(recs), nil
}

// ParseCSV parses launch records without building a Table.
func ParseCSV(r io.Reader) ([]models.LaunchRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var recs []models.LaunchRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseRow(row []string, idx map[string]int) (models.LaunchRecord, error) {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := models.LaunchRecord{
		Site:            cell(ColLaunchSite),
		BoosterCategory: cell(ColBoosterCategory),
		BoosterVersion:  cell(ColBoosterVersion),
	}
	if rec.Site == "" {
		return rec, fmt.Errorf("%w: empty %q", ErrMalformedValue, ColLaunchSite)
	}

	payload, err := strconv.ParseFloat(cell(ColPayloadMass), 64)
	if err != nil || payload < 0 || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return rec, fmt.Errorf("%w: %q = %q", ErrMalformedValue, ColPayloadMass, cell(ColPayloadMass))
	}
	rec.PayloadMassKg = payload

	class, err := strconv.ParseFloat(cell(ColClass), 64)
	if err != nil || (class != 0 && class != 1) {
		return rec, fmt.Errorf("%w: %q = %q", ErrMalformedValue, ColClass, cell(ColClass))
	}
	rec.Success = class == 1

	if v := cell(ColFlightNumber); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return rec, fmt.Errorf("%w: %q = %q", ErrMalformedValue, ColFlightNumber, v)
		}
		rec.FlightNumber = n
	}

	return rec, nil
}
