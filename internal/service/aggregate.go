package service

import (
	"fmt"
	"time"

	"github.com/storeshift/backend/internal/models"
)

// QuantizeMinutes snaps a minutes-from-midnight value to the nearest half
// hour: m<15 rounds down to :00, 15<=m<45 to :30, m>=45 up to the next :00.
// Idempotent, so stored values can be re-quantized freely.
func QuantizeMinutes(min int) int {
	if min < 0 {
		return 0
	}
	h := min / 60
	m := min % 60
	switch {
	case m < 15:
		return h * 60
	case m < 45:
		return h*60 + 30
	default:
		return (h + 1) * 60
	}
}

// WorkHours converts one assignment into labor hours. Named shifts are a
// fixed eight hours whatever their window; meetings are attendance only; a
// custom range longer than six hours loses one unpaid break hour. Unknown
// codes count as zero rather than failing.
func WorkHours(code models.ShiftCode, startMin, endMin int) float64 {
	switch code {
	case models.ShiftEarlyA, models.ShiftMidB, models.ShiftLateC:
		return models.NamedShiftHours
	case models.ShiftMeeting:
		return 0
	case models.ShiftCustom:
		span := float64(endMin-startMin) / 60
		if span > 6 {
			span -= 1
		}
		if span < 0 {
			return 0
		}
		return span
	default:
		return 0
	}
}

// Display glyphs for schedule cells.
const (
	GlyphEarly        = "早"
	GlyphMid          = "中"
	GlyphLate         = "遅"
	GlyphMeeting      = "議"
	GlyphPaidLeave    = "有"
	GlyphRequestedOff = "希"
	GlyphFreeTime     = "全"
)

// ShiftLabel renders an assignment for grids and exports. A custom range that
// matches a named shift window exactly collapses to that shift's glyph so
// hand-entered hours look the same as a picked shift.
func ShiftLabel(code models.ShiftCode, startMin, endMin int) string {
	switch code {
	case models.ShiftEarlyA:
		return GlyphEarly
	case models.ShiftMidB:
		return GlyphMid
	case models.ShiftLateC:
		return GlyphLate
	case models.ShiftMeeting:
		return GlyphMeeting
	case models.ShiftCustom:
		if named, ok := namedShiftForWindow(startMin, endMin); ok {
			return named
		}
		return fmt.Sprintf("%s-%s", clockToken(startMin), clockToken(endMin))
	default:
		return ""
	}
}

// RequestLabel renders a request entry the same way the schedule renders
// assignments. Total over every kind.
func RequestLabel(e models.RequestEntry) string {
	switch e.Kind {
	case models.RequestPaidLeave:
		return GlyphPaidLeave
	case models.RequestRequestedOff:
		return GlyphRequestedOff
	case models.RequestMeeting:
		return GlyphMeeting
	case models.RequestShiftEarly:
		return GlyphEarly
	case models.RequestShiftMid:
		return GlyphMid
	case models.RequestShiftLate:
		return GlyphLate
	case models.RequestFreeTime:
		return GlyphFreeTime
	case models.RequestCustomRange:
		return ShiftLabel(models.ShiftCustom, e.StartMin, e.EndMin)
	default:
		return ""
	}
}

func namedShiftForWindow(startMin, endMin int) (string, bool) {
	switch {
	case startMin == models.EarlyStartMin && endMin == models.EarlyEndMin:
		return GlyphEarly, true
	case startMin == models.MidStartMin && endMin == models.MidEndMin:
		return GlyphMid, true
	case startMin == models.LateStartMin && endMin == models.LateEndMin:
		return GlyphLate, true
	}
	return "", false
}

// clockToken renders a quantized time compactly: hour digits, with 半 marking
// the half hour ("10半" = 10:30).
func clockToken(min int) string {
	h := min / 60
	if min%60 >= 30 {
		return fmt.Sprintf("%d半", h)
	}
	return fmt.Sprintf("%d", h)
}

// DaysInMonth is the day count of a calendar month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthKey is the composite storage key shared by config and schedule rows.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// DefaultPlanningMonth picks the month a submission targets: the current
// month until the 14th, the next month from the 15th on.
func DefaultPlanningMonth(now time.Time) (year, month int) {
	if now.Day() >= 15 {
		next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		return next.Year(), int(next.Month())
	}
	return now.Year(), int(now.Month())
}
