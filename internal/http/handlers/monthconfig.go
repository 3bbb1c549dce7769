package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/service"
)

// @Summary Monthly planning config
// @Description Returns the stored config, or an empty one when the month has not been configured yet
// @Tags config
// @Produce json
// @Success 200 {object} models.MonthlyConfig
// @Router /api/config/{year}/{month} [get]
func (h *Handler) ConfigGet(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	cfg, err := h.Store.GetMonthlyConfig(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load config", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Merge a partial config update
// @Tags config
// @Accept json
// @Produce json
// @Success 200 {object} models.MonthlyConfig
// @Failure 400 {object} map[string]any
// @Router /api/config/{year}/{month} [patch]
func (h *Handler) ConfigPatch(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	var patch service.ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := validateConfigPatch(patch, year, month); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid config", err.Error())
		return
	}

	cur, err := h.Store.GetMonthlyConfig(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load config", err.Error())
		return
	}
	merged := service.MergeMonthlyConfig(cur, patch)
	if err := h.Store.PutMonthlyConfig(c.Request.Context(), merged); err != nil {
		h.Logger.Error().Err(err).Int("year", year).Int("month", month).Msg("failed to save config")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to save config", err.Error())
		return
	}
	c.JSON(http.StatusOK, merged)
}

func validateConfigPatch(patch service.ConfigPatch, year, month int) error {
	days := service.DaysInMonth(year, month)
	for day := range patch.DailySales {
		if day < 1 || day > days {
			return fmt.Errorf("day %d is outside %d-%d", day, year, month)
		}
	}
	for day := range patch.Meetings {
		if day < 1 || day > days {
			return fmt.Errorf("day %d is outside %d-%d", day, year, month)
		}
	}
	for key, v := range patch.MinSkills {
		if !models.ValidSkillKey(key) {
			return fmt.Errorf("unknown skill key %q", key)
		}
		if v < 0 {
			return fmt.Errorf("min skill %q must not be negative", key)
		}
	}
	if patch.MinStaff != nil && (patch.MinStaff.Open < 0 || patch.MinStaff.Close < 0) {
		return fmt.Errorf("staffing minimums must not be negative")
	}
	if patch.Caps != nil {
		c := *patch.Caps
		if c.Enabled() && c.HoursHigh < c.HoursLow {
			return fmt.Errorf("hour cap must be non-decreasing in sales")
		}
	}
	return nil
}
