package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/storeshift/backend/internal/db"
	"github.com/storeshift/backend/internal/planner"
	"github.com/storeshift/backend/internal/service"
)

type Handler struct {
	Store     *db.Store
	Planner   planner.Planner
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Default planning month
// @Description Month a new submission targets: current month until the 14th, next month from the 15th
// @Tags months
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/months/current [get]
func (h *Handler) CurrentMonth(c *gin.Context) {
	year, month := service.DefaultPlanningMonth(time.Now())
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  service.DaysInMonth(year, month),
	})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// parseYearMonth reads the :year/:month route params. Month keys are unpadded
// everywhere, matching the stored "{year}-{month}" composite keys.
func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid year", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid month", nil)
		return 0, 0, false
	}
	return year, month, true
}
