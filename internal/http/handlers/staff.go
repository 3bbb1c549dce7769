package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/storeshift/backend/internal/db"
	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/service"
)

type StaffCreateRequest struct {
	Name       string         `json:"name" validate:"required"`
	Rank       string         `json:"rank"`
	Department string         `json:"department"`
	MaxDays    *int           `json:"max_days" validate:"omitempty,gte=0"`
	CanOpen    bool           `json:"can_open"`
	CanClose   bool           `json:"can_close"`
	Priority   *int           `json:"priority" validate:"omitempty,min=1,max=3"`
	Skills     map[string]int `json:"skills"`
}

// @Summary Create staff profile
// @Tags staff
// @Accept json
// @Produce json
// @Success 201 {object} models.Staff
// @Failure 400 {object} map[string]any
// @Router /api/staff [post]
func (h *Handler) StaffCreate(c *gin.Context) {
	var req StaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	st := models.Staff{
		Name:       req.Name,
		Rank:       models.RankNewPartner,
		Department: models.DeptNone,
		MaxDays:    22,
		CanOpen:    req.CanOpen,
		CanClose:   req.CanClose,
		Priority:   2,
		Skills:     models.DefaultSkills(),
	}
	if req.Rank != "" {
		st.Rank = models.Rank(req.Rank)
		if !st.Rank.Valid() {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown rank", req.Rank)
			return
		}
	}
	st.RankID = st.Rank.ID()
	if req.Department != "" {
		st.Department = models.Department(req.Department)
		if !st.Department.Valid() {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown department", req.Department)
			return
		}
	}
	if req.MaxDays != nil {
		st.MaxDays = *req.MaxDays
	}
	if req.Priority != nil {
		st.Priority = *req.Priority
	}
	if req.Skills != nil {
		if err := applySkills(st.Skills, req.Skills); err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid skills", err.Error())
			return
		}
	}

	id, err := h.Store.CreateStaff(c.Request.Context(), st)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create staff")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create staff", err.Error())
		return
	}
	created, err := h.Store.GetStaff(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load staff", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary List staff in registry order
// @Tags staff
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/staff [get]
func (h *Handler) StaffList(c *gin.Context) {
	staff, err := h.Store.ListStaff(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": service.SortStaff(staff)})
}

type StaffUpdateRequest struct {
	Name       *string        `json:"name" validate:"omitempty,min=1"`
	Rank       *string        `json:"rank"`
	Department *string        `json:"department"`
	MaxDays    *int           `json:"max_days" validate:"omitempty,gte=0"`
	CanOpen    *bool          `json:"can_open"`
	CanClose   *bool          `json:"can_close"`
	Priority   *int           `json:"priority" validate:"omitempty,min=1,max=3"`
	Skills     map[string]int `json:"skills"`
}

func (h *Handler) StaffUpdate(c *gin.Context) {
	id := c.Param("id")
	var req StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	upd := db.StaffUpdate{
		Name:     req.Name,
		MaxDays:  req.MaxDays,
		CanOpen:  req.CanOpen,
		CanClose: req.CanClose,
		Priority: req.Priority,
	}
	if req.Rank != nil {
		rank := models.Rank(*req.Rank)
		if !rank.Valid() {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown rank", *req.Rank)
			return
		}
		upd.Rank = &rank
	}
	if req.Department != nil {
		dept := models.Department(*req.Department)
		if !dept.Valid() {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown department", *req.Department)
			return
		}
		upd.Department = &dept
	}
	if req.Skills != nil {
		current, err := h.Store.GetStaff(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				writeError(c, http.StatusNotFound, "NOT_FOUND", "Staff not found", nil)
				return
			}
			writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load staff", err.Error())
			return
		}
		merged := current.Skills
		if merged == nil {
			merged = models.DefaultSkills()
		}
		if err := applySkills(merged, req.Skills); err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid skills", err.Error())
			return
		}
		upd.Skills = merged
	}

	if err := h.Store.UpdateStaff(c.Request.Context(), id, upd); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Staff not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to update staff", err.Error())
		return
	}
	updated, err := h.Store.GetStaff(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) StaffDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteStaff(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Staff not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to delete staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func applySkills(dst map[string]int, patch map[string]int) error {
	for key, level := range patch {
		if !models.ValidSkillKey(key) {
			return fmt.Errorf("unknown skill key %q", key)
		}
		if level < 0 || level > 5 {
			return fmt.Errorf("skill %q level %d out of range 0..5", key, level)
		}
		dst[key] = level
	}
	return nil
}
