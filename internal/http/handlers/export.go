package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/service"
)

// utf8BOM makes spreadsheet tools pick the right encoding for the Japanese
// glyphs in the grid.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// @Summary Export the month grid as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string
// @Router /api/export/{year}/{month} [get]
func (h *Handler) Export(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	staff, err := h.Store.ListStaff(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list staff", err.Error())
		return
	}
	sched, err := h.Store.GetDeterminedSchedule(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load schedule", err.Error())
		return
	}

	body, err := renderExportCSV(staff, sched)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to render CSV", err.Error())
		return
	}

	filename := service.ExportFilename(year, month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

func renderExportCSV(staff []models.Staff, sched models.DeterminedSchedule) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	for _, row := range service.ExportRows(staff, sched) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
