package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

// SchedulePeriods adapts the repository to schedule.Persistence: the period
// collection is saved and loaded as one unit.
type SchedulePeriods struct {
	r *Repository
}

func (r *Repository) SchedulePeriods() *SchedulePeriods {
	return &SchedulePeriods{r: r}
}

// Save rewrites both period tables inside one transaction. The whole schedule
// is at most a few hundred rows, so replace-all is simpler than diffing and
// keeps insertion order exact.
func (sp *SchedulePeriods) Save(ctx context.Context, periods []schedule.Period) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(sp.r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := sp.r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// schedule_assignments rows cascade with their period
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_periods`); err != nil {
		return err
	}

	for position, period := range periods {
		var periodID int64

		query := `
			INSERT INTO schedule_periods (position, start_date, end_date)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, position, period.StartDate, period.EndDate).Scan(&periodID); err != nil {
			return err
		}

		query = `
			INSERT INTO schedule_assignments (period_id, position, day, weekday_name, staff_name)
			VALUES ($1, $2, $3, $4, $5)
		`
		for i, a := range period.Assignments {
			if _, err := tx.ExecContext(ctx, query, periodID, i, a.Date, a.WeekdayName, a.StaffName); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (sp *SchedulePeriods) Load(ctx context.Context) ([]schedule.Period, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(sp.r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			p.id,
			p.start_date,
			p.end_date,
			a.day,
			a.weekday_name,
			a.staff_name
		FROM schedule_periods p
		LEFT JOIN schedule_assignments a ON p.id = a.period_id
		ORDER BY p.position, a.position
	`

	rows, err := sp.r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := make([]schedule.Period, 0)
	lastID := int64(-1)

	for rows.Next() {
		var row struct {
			ID        int64
			StartDate schedule.Date
			EndDate   schedule.Date

			Day         sql.NullTime
			WeekdayName sql.NullString
			StaffName   sql.NullString
		}

		dst := []any{&row.ID, &row.StartDate, &row.EndDate, &row.Day, &row.WeekdayName, &row.StaffName}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if row.ID != lastID {
			periods = append(periods, schedule.Period{
				StartDate:   row.StartDate,
				EndDate:     row.EndDate,
				Assignments: make([]schedule.Assignment, 0),
			})
			lastID = row.ID
		}

		// a period with no assignment rows should not happen, but the LEFT
		// JOIN makes it representable
		if !row.Day.Valid {
			continue
		}

		p := &periods[len(periods)-1]
		p.Assignments = append(p.Assignments, schedule.Assignment{
			Date:        schedule.DateOf(row.Day.Time),
			WeekdayName: row.WeekdayName.String,
			StaffName:   row.StaffName.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}
