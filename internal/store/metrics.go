package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matejg/najdeno/internal/model"
)

// Bucket names of the status metrics report.
const (
	bucketUnclaimed = "Unclaimed"
	bucketClaimed   = "Claimed"
)

// StatusMetrics computes the dashboard metrics in one read pass: count
// and average age of unclaimed items, and the count of claimed items.
// The average is taken over whole-day ages so it agrees with the
// per-item DaysUnclaimed derivation, and is reported as zero for the
// claimed bucket where age-since-found is no longer meaningful.
func StatusMetrics(ctx context.Context, db *sql.DB) ([]model.StatusMetric, error) {
	var unclaimedCount int
	var avgDays float64
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(ROUND(AVG(CAST(julianday('now') - julianday(date_found) AS INTEGER)), 2), 0)
		 FROM items WHERE is_claimed = 0`,
	).Scan(&unclaimedCount, &avgDays)
	if err != nil {
		return nil, fmt.Errorf("computing unclaimed metrics: %w", err)
	}

	var claimedCount int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE is_claimed = 1`,
	).Scan(&claimedCount)
	if err != nil {
		return nil, fmt.Errorf("computing claimed metrics: %w", err)
	}

	return []model.StatusMetric{
		{Status: bucketUnclaimed, TotalItems: unclaimedCount, AverageDaysUnclaimed: avgDays},
		{Status: bucketClaimed, TotalItems: claimedCount, AverageDaysUnclaimed: 0},
	}, nil
}
