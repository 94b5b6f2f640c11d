package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

const gateUnlockedKey = "schedule_gate_unlocked"

// scheduleError maps the schedule package's domain errors onto the response
// envelope. Anything outside the known kinds is treated as a server fault.
func (h *Handler) scheduleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, schedule.ErrValidation),
		errors.Is(err, schedule.ErrDuplicateName),
		errors.Is(err, schedule.ErrNotFound),
		errors.Is(err, schedule.ErrIndexOutOfRange),
		errors.Is(err, schedule.ErrLocked):
		h.errorResponse(w, r, err.Error())
	default:
		h.internalServerError(w, r, err)
	}
}

// UnlockSchedule opens the edit gate when the shared secret matches. The
// unlock also leaves a flag in redis so a restarted server comes back
// unlocked until the flag expires.
func (h *Handler) UnlockSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Secret string `json:"secret" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.gate.Unlock(req.Secret) {
		h.errorResponse(w, r, "رمز التحرير غير صحيح")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, gateUnlockedKey, 1, time.Duration(h.config.Schedule.UnlockTTL)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم فتح جدول المناوبات للتحرير", nil)
}

func (h *Handler) GetSchedulePeriods(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "تم جلب جدول المناوبات بنجاح", h.store.ListPeriods())
}

func (h *Handler) AddSchedulePeriod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate schedule.Date `json:"startDate" validate:"required"`
		Days      int           `json:"days" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.rosterMu.Lock()
	staff := h.roster.SelectedNames()
	h.rosterMu.Unlock()

	period, err := h.store.AddPeriod(r.Context(), req.StartDate, req.Days, staff)
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء فترة المناوبات بنجاح", period)
}

func (h *Handler) DeleteSchedulePeriod(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.errorResponse(w, r, schedule.ErrIndexOutOfRange.Error())
		return
	}

	if err := h.store.DeletePeriod(r.Context(), index); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف فترة المناوبات بنجاح", nil)
}

func (h *Handler) ClearSchedulePeriods(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(r.Context()); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم مسح جدول المناوبات بالكامل", nil)
}

func (h *Handler) GetDutyStaff(w http.ResponseWriter, r *http.Request) {
	h.rosterMu.Lock()
	members := h.roster.Members()
	h.rosterMu.Unlock()

	h.successResponse(w, r, "تم جلب قائمة المناوبين بنجاح", members)
}

// mutateRoster applies one roster change and persists the new snapshot. When
// persisting fails the in-memory roster is swapped back to the pre-change
// copy so memory and database stay in step.
func (h *Handler) mutateRoster(mutate func(*schedule.Roster) error) error {
	h.rosterMu.Lock()
	defer h.rosterMu.Unlock()

	before := h.roster.Members()
	if err := mutate(h.roster); err != nil {
		return err
	}
	if err := h.repository.ReplaceDutyStaff(h.roster.Members()); err != nil {
		h.roster = schedule.NewRoster(before)
		return err
	}
	return nil
}

func (h *Handler) AddDutyStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.mutateRoster(func(roster *schedule.Roster) error {
		return roster.AddMember(req.Name)
	}); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إضافة المناوب بنجاح", nil)
}

func (h *Handler) RenameDutyStaff(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		h.errorResponse(w, r, schedule.ErrNotFound.Error())
		return
	}

	var req struct {
		NewName string `json:"newName" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.mutateRoster(func(roster *schedule.Roster) error {
		return roster.RenameMember(name, req.NewName)
	}); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تعديل اسم المناوب بنجاح", nil)
}

func (h *Handler) RemoveDutyStaff(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		h.errorResponse(w, r, schedule.ErrNotFound.Error())
		return
	}

	if err := h.mutateRoster(func(roster *schedule.Roster) error {
		return roster.RemoveMember(name)
	}); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف المناوب بنجاح", nil)
}

func (h *Handler) ToggleDutyStaff(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		h.errorResponse(w, r, schedule.ErrNotFound.Error())
		return
	}

	if err := h.mutateRoster(func(roster *schedule.Roster) error {
		return roster.ToggleEligibility(name)
	}); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تغيير حالة المناوب بنجاح", nil)
}
