package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"launchdash/internal/models"
)

var launchColumns = []string{
	"flight_number", "launch_site", "payload_mass_kg", "class", "booster_version", "booster_category",
}

// LoadLaunchRecords returns every launch record in import order.
func (d *DB) LoadLaunchRecords(ctx context.Context) ([]models.LaunchRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT COALESCE(flight_number, 0), launch_site, payload_mass_kg, class, booster_version, booster_category
		FROM launch_records
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query launch records: %w", err)
	}
	defer rows.Close()

	var recs []models.LaunchRecord
	for rows.Next() {
		var r models.LaunchRecord
		var class int16
		if err := rows.Scan(&r.FlightNumber, &r.Site, &r.PayloadMassKg, &class, &r.BoosterVersion, &r.BoosterCategory); err != nil {
			return nil, fmt.Errorf("failed to scan launch record: %w", err)
		}
		r.Success = class == 1
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoLaunchRecords
	}
	return recs, nil
}

// ReplaceLaunchRecords swaps the stored dataset for recs in one transaction
// and returns the number of rows written.
func (d *DB) ReplaceLaunchRecords(ctx context.Context, recs []models.LaunchRecord) (int64, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE launch_records RESTART IDENTITY`); err != nil {
		return 0, fmt.Errorf("failed to clear launch records: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"launch_records"}, launchColumns,
		pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
			r := recs[i]
			var flight any
			if r.FlightNumber != 0 {
				flight = int32(r.FlightNumber)
			}
			return []any{flight, r.Site, r.PayloadMassKg, int16(r.Class()), r.BoosterVersion, r.BoosterCategory}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy launch records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit launch records: %w", err)
	}
	return n, nil
}

// CountLaunchRecords returns the number of stored records.
func (d *DB) CountLaunchRecords(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM launch_records`).Scan(&n)
	return n, err
}
