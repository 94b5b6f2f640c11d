package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

const vesselColumns = `
	id, vessel_name, flag, coming_from, heading_to,
	crew_count, passenger_count, pilgrim_count,
	appointment, agent, entered_by, arrival_date, created_at, version
`

func scanVessel(scan func(dst ...any) error) (*domain.Vessel, error) {
	var row struct {
		PassengerCount sql.NullInt32
		PilgrimCount   sql.NullInt32
		EnteredBy      sql.NullString
		ArrivalDate    sql.NullTime
	}

	v := &domain.Vessel{}
	dst := []any{
		&v.ID, &v.VesselName, &v.Flag, &v.ComingFrom, &v.HeadingTo,
		&v.CrewCount, &row.PassengerCount, &row.PilgrimCount,
		&v.Appointment, &v.Agent, &row.EnteredBy, &row.ArrivalDate, &v.CreatedAt, &v.Version,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	if row.PassengerCount.Valid {
		v.PassengerCount = &row.PassengerCount.Int32
	}
	if row.PilgrimCount.Valid {
		v.PilgrimCount = &row.PilgrimCount.Int32
	}
	if row.EnteredBy.Valid {
		v.EnteredBy = &row.EnteredBy.String
	}
	if row.ArrivalDate.Valid {
		arrival := schedule.DateOf(row.ArrivalDate.Time)
		v.ArrivalDate = &arrival
	}

	return v, nil
}

func (r *Repository) CreateVessel(vessel *domain.Vessel) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO vessels (id, vessel_name, flag, coming_from, heading_to, crew_count, passenger_count, pilgrim_count, appointment, agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, version
	`

	args := []any{
		vessel.ID, vessel.VesselName, vessel.Flag, vessel.ComingFrom, vessel.HeadingTo,
		vessel.CrewCount, vessel.PassengerCount, vessel.PilgrimCount, vessel.Appointment, vessel.Agent,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&vessel.CreatedAt, &vessel.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetVesselByID(id string) (*domain.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessels WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanVessel(r.dbpool.QueryRowContext(ctx, query, id).Scan)
}

func (r *Repository) queryVessels(query string, args ...any) ([]*domain.Vessel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vessels := make([]*domain.Vessel, 0)
	for rows.Next() {
		v, err := scanVessel(rows.Scan)
		if err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vessels, nil
}

// GetWaitingVessels lists vessels that have not been cleared yet, ordered by
// their appointment.
func (r *Repository) GetWaitingVessels() ([]*domain.Vessel, error) {
	query := `
		SELECT ` + vesselColumns + `
		FROM vessels
		WHERE entered_by IS NULL
		ORDER BY appointment ASC, created_at ASC
	`
	return r.queryVessels(query)
}

func (r *Repository) GetArrivedVessels() ([]*domain.Vessel, error) {
	query := `
		SELECT ` + vesselColumns + `
		FROM vessels
		WHERE entered_by IS NOT NULL
		ORDER BY arrival_date DESC, created_at DESC
	`
	return r.queryVessels(query)
}

func (r *Repository) SearchVessels(term string) ([]*domain.Vessel, error) {
	query := `
		SELECT ` + vesselColumns + `
		FROM vessels
		WHERE vessel_name ILIKE '%' || $1 || '%' OR agent ILIKE '%' || $1 || '%'
		ORDER BY appointment DESC
	`
	return r.queryVessels(query, term)
}

func (r *Repository) UpdateVessel(vessel *domain.Vessel) error {
	query := `
		UPDATE vessels
		SET
			vessel_name = $1,
			flag = $2,
			coming_from = $3,
			heading_to = $4,
			crew_count = $5,
			passenger_count = $6,
			pilgrim_count = $7,
			appointment = $8,
			agent = $9,
			entered_by = $10,
			arrival_date = $11,
			version = version + 1
		WHERE id = $12 AND version = $13
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		vessel.VesselName, vessel.Flag, vessel.ComingFrom, vessel.HeadingTo,
		vessel.CrewCount, vessel.PassengerCount, vessel.PilgrimCount,
		vessel.Appointment, vessel.Agent, vessel.EnteredBy, vessel.ArrivalDate,
		vessel.ID, vessel.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&vessel.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteVessel(id string) error {
	query := `
		DELETE FROM vessels WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
