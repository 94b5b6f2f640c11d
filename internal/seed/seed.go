package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/repository"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

// manifest column order, first row is the header
var manifestHeader = []string{
	"vessel_name", "flag", "coming_from", "heading_to",
	"crew_count", "passenger_count", "pilgrim_count", "appointment", "agent",
}

// SeedManifest imports a CSV of expected vessels, one registration per row.
// Counts for passengers and pilgrims may be empty. Rows that fail to parse are
// logged and skipped so one bad row does not abort the whole manifest.
func SeedManifest(r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("unable to open manifest", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		slog.Error("unable to read manifest header", "error", err)
		return
	}
	if len(header) != len(manifestHeader) {
		slog.Error("unexpected manifest header", "header", header)
		return
	}
	for i, name := range manifestHeader {
		if header[i] != name {
			slog.Error("unexpected manifest column", "want", name, "got", header[i])
			return
		}
	}

	inserted := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("unable to read manifest row", "error", err)
			return
		}

		vessel, err := vesselFromRow(row)
		if err != nil {
			slog.Error("skipping manifest row", "line", line, "error", err)
			continue
		}

		if err := r.CreateVessel(vessel); err != nil {
			slog.Error("unable to insert vessel", "line", line, "error", err)
			continue
		}
		inserted++
	}

	slog.Info("manifest imported", "count", inserted)
}

func vesselFromRow(row []string) (*domain.Vessel, error) {
	if len(row) != len(manifestHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(manifestHeader), len(row))
	}

	crewCount, err := strconv.ParseInt(row[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid crew count %q", row[4])
	}

	appointment, err := schedule.ParseDate(row[7])
	if err != nil {
		return nil, fmt.Errorf("invalid appointment date %q", row[7])
	}

	vessel := &domain.Vessel{
		ID:          uuid.NewString(),
		VesselName:  row[0],
		Flag:        row[1],
		ComingFrom:  row[2],
		HeadingTo:   row[3],
		CrewCount:   int32(crewCount),
		Appointment: appointment,
		Agent:       row[8],
	}

	if row[5] != "" {
		passengers, err := strconv.ParseInt(row[5], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid passenger count %q", row[5])
		}
		count := int32(passengers)
		vessel.PassengerCount = &count
	}
	if row[6] != "" {
		pilgrims, err := strconv.ParseInt(row[6], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid pilgrim count %q", row[6])
		}
		count := int32(pilgrims)
		vessel.PilgrimCount = &count
	}

	return vessel, nil
}
