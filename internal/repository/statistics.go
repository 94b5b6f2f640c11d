package repository

import (
	"context"
	"time"

	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

// GetMonthlyArrivalCounts counts cleared vessels per calendar month (1-12),
// years folded together, matching how the control center reads its wall chart.
func (r *Repository) GetMonthlyArrivalCounts() ([]*domain.MonthlyCount, error) {
	query := `
		SELECT EXTRACT(MONTH FROM arrival_date)::int AS month, COUNT(*)
		FROM vessels
		WHERE entered_by IS NOT NULL AND arrival_date IS NOT NULL
		GROUP BY month
		ORDER BY month
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*domain.MonthlyCount, 0)
	for rows.Next() {
		mc := &domain.MonthlyCount{}
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, mc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *Repository) GetOperatorCounts() ([]*domain.OperatorCount, error) {
	query := `
		SELECT entered_by, COUNT(*)
		FROM vessels
		WHERE entered_by IS NOT NULL
		GROUP BY entered_by
		ORDER BY COUNT(*) DESC, entered_by
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*domain.OperatorCount, 0)
	for rows.Next() {
		oc := &domain.OperatorCount{}
		if err := rows.Scan(&oc.EnteredBy, &oc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, oc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *Repository) GetVesselsByArrivalRange(from, to schedule.Date) ([]*domain.Vessel, error) {
	query := `
		SELECT ` + vesselColumns + `
		FROM vessels
		WHERE entered_by IS NOT NULL AND arrival_date BETWEEN $1 AND $2
		ORDER BY arrival_date ASC
	`
	return r.queryVessels(query, from, to)
}

func (r *Repository) GetRecentArrivals(months int) ([]*domain.Vessel, error) {
	query := `
		SELECT ` + vesselColumns + `
		FROM vessels
		WHERE entered_by IS NOT NULL AND arrival_date >= CURRENT_DATE - ($1 * INTERVAL '1 month')
		ORDER BY arrival_date DESC
	`
	return r.queryVessels(query, months)
}
