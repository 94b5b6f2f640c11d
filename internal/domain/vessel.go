package domain

import (
	"time"

	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

// Vessel is one registered arrival. A vessel is "waiting" until EnteredBy is
// set; recording the arrival fills EnteredBy and ArrivalDate.
type Vessel struct {
	ID             string         `json:"id"`
	VesselName     string         `json:"vesselName"`
	Flag           string         `json:"flag"`
	ComingFrom     string         `json:"comingFrom"`
	HeadingTo      string         `json:"headingTo"`
	CrewCount      int32          `json:"crewCount"`
	PassengerCount *int32         `json:"passengerCount"`
	PilgrimCount   *int32         `json:"pilgrimCount"`
	Appointment    schedule.Date  `json:"appointment"`
	Agent          string         `json:"agent"`
	EnteredBy      *string        `json:"enteredBy"`
	ArrivalDate    *schedule.Date `json:"arrivalDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	Version        int32          `json:"-"`
}

func (v *Vessel) Arrived() bool {
	return v.EnteredBy != nil
}
