package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storeshift/backend/internal/service"
)

// @Summary Determined schedule for a month
// @Description Read-only view of the externally computed plan; empty when the planner has not run
// @Tags schedule
// @Produce json
// @Success 200 {object} models.DeterminedSchedule
// @Router /api/schedule/{year}/{month} [get]
func (h *Handler) ScheduleGet(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	sched, err := h.Store.GetDeterminedSchedule(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, sched)
}

type ComputeRequest struct {
	Year  int `json:"year"`
	Month int `json:"month" validate:"omitempty,min=1,max=12"`
}

// @Summary Trigger the external shift optimizer
// @Description Fire-and-wait; config and requests for the month are read from storage by the optimizer
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/schedule/compute [post]
func (h *Handler) ScheduleCompute(c *gin.Context) {
	var req ComputeRequest
	// Body is optional; no body means the default planning month.
	_ = c.ShouldBindJSON(&req)
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	year, month := req.Year, req.Month
	if year == 0 || month == 0 {
		year, month = service.DefaultPlanningMonth(time.Now())
	}

	start := time.Now()
	message, err := h.Planner.Compute(c.Request.Context(), year, month)
	if err != nil {
		h.Logger.Error().Err(err).Int("year", year).Int("month", month).Msg("planner call failed")
		writeError(c, http.StatusBadGateway, "PLANNER_ERROR", "Shift computation failed", err.Error())
		return
	}
	h.Logger.Info().Int("year", year).Int("month", month).Dur("took", time.Since(start)).Msg("planner finished")
	c.JSON(http.StatusOK, gin.H{"message": message, "year": year, "month": month})
}

// @Summary Compliance report for a month
// @Description Advisory checks only: skill sufficiency, sales-driven hour caps, opener/closer minimums, per-staff day caps
// @Tags report
// @Produce json
// @Success 200 {object} service.MonthReport
// @Router /api/report/{year}/{month} [get]
func (h *Handler) Report(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	staff, err := h.Store.ListStaff(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list staff", err.Error())
		return
	}
	cfg, err := h.Store.GetMonthlyConfig(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load config", err.Error())
		return
	}
	sched, err := h.Store.GetDeterminedSchedule(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, service.BuildMonthReport(staff, cfg, sched))
}
