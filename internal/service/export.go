package service

import (
	"fmt"

	"github.com/storeshift/backend/internal/models"
)

// ExportRows builds the tabular month view handed to the CSV writer: a header
// of metadata columns plus one column per day, then one row per staff member
// in registry order. Cells carry the shift glyph for that staff's assignment,
// empty when the day is off.
func ExportRows(staff []models.Staff, sched models.DeterminedSchedule) [][]string {
	days := DaysInMonth(sched.Year, sched.Month)

	header := []string{"名前", "部門", "役職"}
	for d := 1; d <= days; d++ {
		header = append(header, fmt.Sprintf("%d日", d))
	}
	rows := [][]string{header}

	cells := map[string]map[int]string{}
	for day, assignments := range sched.Days {
		for _, a := range assignments {
			if cells[a.StaffID] == nil {
				cells[a.StaffID] = map[int]string{}
			}
			label := ShiftLabel(a.Shift, a.StartMin, a.EndMin)
			// A meeting never hides a working shift on the same day.
			if cur, ok := cells[a.StaffID][day]; ok && label == GlyphMeeting && cur != "" {
				continue
			}
			cells[a.StaffID][day] = label
		}
	}

	for _, s := range SortStaff(staff) {
		row := []string{s.Name, s.Department.Label(), s.Rank.Label()}
		for d := 1; d <= days; d++ {
			row = append(row, cells[s.ID][d])
		}
		rows = append(rows, row)
	}
	return rows
}

// ExportFilename names the download after the target month.
func ExportFilename(year, month int) string {
	return fmt.Sprintf("shift_%s.csv", MonthKey(year, month))
}
