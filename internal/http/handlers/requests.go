package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/service"
)

// @Summary List all request sets for a month
// @Tags requests
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/requests/{year}/{month} [get]
func (h *Handler) RequestsList(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	sets, err := h.Store.ListRequestSets(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sets, "year": year, "month": month})
}

func (h *Handler) RequestGet(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	staffID := c.Param("staffId")
	set, err := h.Store.GetRequestSet(c.Request.Context(), staffID, year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load request set", err.Error())
		return
	}
	c.JSON(http.StatusOK, set)
}

type SubmitRequestSet struct {
	Entries map[int]models.RequestEntry `json:"entries"`
}

// @Summary Submit a month's availability
// @Description Replaces the whole persisted set for (staff, year, month); no per-day diffing
// @Tags requests
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/requests/{year}/{month}/{staffId} [put]
func (h *Handler) RequestSubmit(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	staffID := c.Param("staffId")
	if staffID == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "staff selection is required", nil)
		return
	}

	var req SubmitRequestSet
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	staff, err := h.Store.GetStaff(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Staff not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load staff", err.Error())
		return
	}

	entries := service.NormalizeRequestSet(req.Entries)
	if err := service.ValidateRequestSet(staff.Rank, year, month, entries); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request set", err.Error())
		return
	}

	set := models.RequestSet{StaffID: staffID, Year: year, Month: month, Entries: entries}

	// Delete and insert are two explicit store steps; the transaction is what
	// makes the replace atomic here. A storage layer without transactions
	// would run the same two steps and accept the window in between.
	err = h.Store.WithTx(c.Request.Context(), func(tx pgx.Tx) error {
		if err := h.Store.DeleteRequestSet(c.Request.Context(), tx, staffID, year, month); err != nil {
			return err
		}
		_, err := h.Store.InsertRequestSet(c.Request.Context(), tx, set)
		return err
	})
	if err != nil {
		h.Logger.Error().Err(err).Str("staff_id", staffID).Msg("failed to submit request set")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to submit request set", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "submitted", "days": len(entries)})
}
