package repository

import (
	"context"
	"time"

	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

// LoadDutyStaff reads the persisted roster in its stored order. It is the
// initial state for the in-memory roster at startup.
func (r *Repository) LoadDutyStaff() ([]schedule.StaffMember, error) {
	query := `
		SELECT name, eligible FROM duty_staff ORDER BY position
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]schedule.StaffMember, 0)
	for rows.Next() {
		var m schedule.StaffMember
		if err := rows.Scan(&m.Name, &m.Eligible); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// ReplaceDutyStaff rewrites the whole roster snapshot in one transaction. The
// roster is a handful of names, so replace-all keeps insertion order trivially
// correct.
func (r *Repository) ReplaceDutyStaff(members []schedule.StaffMember) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM duty_staff`); err != nil {
		return err
	}

	query := `
		INSERT INTO duty_staff (position, name, eligible)
		VALUES ($1, $2, $3)
	`
	for i, m := range members {
		if _, err := tx.ExecContext(ctx, query, i, m.Name, m.Eligible); err != nil {
			return err
		}
	}

	return tx.Commit()
}
