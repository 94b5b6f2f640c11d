package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

func (h *Handler) CreateVessel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VesselName     string        `json:"vesselName" validate:"required"`
		Flag           string        `json:"flag" validate:"required"`
		ComingFrom     string        `json:"comingFrom" validate:"required"`
		HeadingTo      string        `json:"headingTo" validate:"required"`
		CrewCount      int32         `json:"crewCount" validate:"required,gte=0"`
		PassengerCount *int32        `json:"passengerCount" validate:"omitempty,gte=0"`
		PilgrimCount   *int32        `json:"pilgrimCount" validate:"omitempty,gte=0"`
		Appointment    schedule.Date `json:"appointment" validate:"required"`
		Agent          string        `json:"agent" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	vessel := &domain.Vessel{
		ID:             uuid.NewString(),
		VesselName:     req.VesselName,
		Flag:           req.Flag,
		ComingFrom:     req.ComingFrom,
		HeadingTo:      req.HeadingTo,
		CrewCount:      req.CrewCount,
		PassengerCount: req.PassengerCount,
		PilgrimCount:   req.PilgrimCount,
		Appointment:    req.Appointment,
		Agent:          req.Agent,
	}

	if err := h.repository.CreateVessel(vessel); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حفظ بيانات الناقلة بنجاح", vessel)
}

func (h *Handler) GetWaitingVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := h.repository.GetWaitingVessels()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الانتظار بنجاح", vessels)
}

func (h *Handler) GetArrivedVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := h.repository.GetArrivedVessels()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الوصول بنجاح", vessels)
}

func (h *Handler) SearchVessels(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		h.errorResponse(w, r, "أدخل كلمة البحث")
		return
	}

	vessels, err := h.repository.SearchVessels(term)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم البحث بنجاح", vessels)
}

func (h *Handler) GetVessel(w http.ResponseWriter, r *http.Request) {
	vessel := r.Context().Value(VesselCtx).(*domain.Vessel)

	h.successResponse(w, r, "تم جلب بيانات الناقلة بنجاح", vessel)
}

// RecordArrival clears a waiting vessel: the operator confirms the final crew
// count, stamps their name and the arrival date, and a clearance notice goes
// out to the control center mailbox.
func (h *Handler) RecordArrival(w http.ResponseWriter, r *http.Request) {
	vessel := r.Context().Value(VesselCtx).(*domain.Vessel)

	if vessel.Arrived() {
		h.errorResponse(w, r, "تم تسجيل وصول هذه الناقلة مسبقاً")
		return
	}

	var req struct {
		CrewCount   int32         `json:"crewCount" validate:"required,gte=0"`
		EnteredBy   string        `json:"enteredBy" validate:"required"`
		ArrivalDate schedule.Date `json:"arrivalDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	vessel.CrewCount = req.CrewCount
	vessel.EnteredBy = &req.EnteredBy
	vessel.ArrivalDate = &req.ArrivalDate

	if err := h.repository.UpdateVessel(vessel); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "clearance_notice",
		To:   h.config.Email.ClearanceTo,
		Data: domain.ClearanceNoticeMailData{
			VesselName:  vessel.VesselName,
			Flag:        vessel.Flag,
			ComingFrom:  vessel.ComingFrom,
			HeadingTo:   vessel.HeadingTo,
			CrewCount:   vessel.CrewCount,
			ArrivalDate: req.ArrivalDate.String(),
			EnteredBy:   req.EnteredBy,
		},
	}

	if err := h.publishMailMessage(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تسجيل الوصول بنجاح", vessel)
}

func (h *Handler) UpdateVessel(w http.ResponseWriter, r *http.Request) {
	vessel := r.Context().Value(VesselCtx).(*domain.Vessel)

	var req struct {
		VesselName     *string        `json:"vesselName"`
		Flag           *string        `json:"flag"`
		ComingFrom     *string        `json:"comingFrom"`
		HeadingTo      *string        `json:"headingTo"`
		CrewCount      *int32         `json:"crewCount" validate:"omitempty,gte=0"`
		PassengerCount *int32         `json:"passengerCount" validate:"omitempty,gte=0"`
		PilgrimCount   *int32         `json:"pilgrimCount" validate:"omitempty,gte=0"`
		Appointment    *schedule.Date `json:"appointment"`
		Agent          *string        `json:"agent"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.VesselName != nil {
		vessel.VesselName = *req.VesselName
	}
	if req.Flag != nil {
		vessel.Flag = *req.Flag
	}
	if req.ComingFrom != nil {
		vessel.ComingFrom = *req.ComingFrom
	}
	if req.HeadingTo != nil {
		vessel.HeadingTo = *req.HeadingTo
	}
	if req.CrewCount != nil {
		vessel.CrewCount = *req.CrewCount
	}
	if req.PassengerCount != nil {
		vessel.PassengerCount = req.PassengerCount
	}
	if req.PilgrimCount != nil {
		vessel.PilgrimCount = req.PilgrimCount
	}
	if req.Appointment != nil {
		vessel.Appointment = *req.Appointment
	}
	if req.Agent != nil {
		vessel.Agent = *req.Agent
	}

	if err := h.repository.UpdateVessel(vessel); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تعديل بيانات الناقلة بنجاح", vessel)
}

func (h *Handler) DeleteVessel(w http.ResponseWriter, r *http.Request) {
	vessel := r.Context().Value(VesselCtx).(*domain.Vessel)

	if err := h.repository.DeleteVessel(vessel.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الناقلة بنجاح", nil)
}
