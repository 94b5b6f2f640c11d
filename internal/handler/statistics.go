package handler

import (
	"net/http"
	"strconv"

	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

func (h *Handler) GetMonthlyStatistics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repository.GetMonthlyArrivalCounts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب الإحصائيات الشهرية بنجاح", counts)
}

func (h *Handler) GetOperatorStatistics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repository.GetOperatorCounts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب إحصائيات المراقبين بنجاح", counts)
}

func (h *Handler) GetArrivalsByRange(w http.ResponseWriter, r *http.Request) {
	from, err := schedule.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		h.errorResponse(w, r, "تاريخ بداية الفترة غير صالح")
		return
	}
	to, err := schedule.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		h.errorResponse(w, r, "تاريخ نهاية الفترة غير صالح")
		return
	}
	if to.Before(from) {
		h.errorResponse(w, r, "نهاية الفترة تسبق بدايتها")
		return
	}

	vessels, err := h.repository.GetVesselsByArrivalRange(from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب سجل الوصول للفترة المحددة بنجاح", vessels)
}

func (h *Handler) GetRecentArrivals(w http.ResponseWriter, r *http.Request) {
	months := 3
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.errorResponse(w, r, "عدد الأشهر غير صالح")
			return
		}
		months = parsed
	}

	vessels, err := h.repository.GetRecentArrivals(months)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب سجل الوصول الأخير بنجاح", vessels)
}
