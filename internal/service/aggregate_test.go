package service

import (
	"testing"
	"time"

	"github.com/storeshift/backend/internal/models"
)

func TestQuantizeMinutesBoundaries(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{10*60 + 14, 10 * 60},
		{10*60 + 15, 10*60 + 30},
		{10*60 + 44, 10*60 + 30},
		{10*60 + 45, 11 * 60},
		{10 * 60, 10 * 60},
		{10*60 + 30, 10*60 + 30},
	}
	for _, c := range cases {
		if got := QuantizeMinutes(c.in); got != c.want {
			t.Fatalf("QuantizeMinutes(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestQuantizeMinutesIdempotent(t *testing.T) {
	for min := 0; min <= 24*60; min++ {
		once := QuantizeMinutes(min)
		if twice := QuantizeMinutes(once); twice != once {
			t.Fatalf("quantize not idempotent at %d: %d then %d", min, once, twice)
		}
	}
}

func TestWorkHoursNamedShiftsFixed(t *testing.T) {
	for _, code := range []models.ShiftCode{models.ShiftEarlyA, models.ShiftMidB, models.ShiftLateC} {
		// Start/end must not matter for named shifts.
		if got := WorkHours(code, 0, 0); got != 8.0 {
			t.Fatalf("WorkHours(%s) = %v, want 8.0", code, got)
		}
		if got := WorkHours(code, 9*60, 12*60); got != 8.0 {
			t.Fatalf("WorkHours(%s with window) = %v, want 8.0", code, got)
		}
	}
}

func TestWorkHoursCustomRange(t *testing.T) {
	if got := WorkHours(models.ShiftCustom, 10*60, 16*60); got != 6.0 {
		t.Fatalf("6h range = %v, want 6.0 (no break)", got)
	}
	if got := WorkHours(models.ShiftCustom, 10*60, 16*60+30); got != 5.5 {
		t.Fatalf("6.5h range = %v, want 5.5 (break subtracted)", got)
	}
	if got := WorkHours(models.ShiftCustom, 16*60, 10*60); got != 0 {
		t.Fatalf("inverted range = %v, want 0", got)
	}
}

func TestWorkHoursMeetingAndUnknown(t *testing.T) {
	if got := WorkHours(models.ShiftMeeting, 9*60, 10*60); got != 0 {
		t.Fatalf("meeting hours = %v, want 0", got)
	}
	if got := WorkHours(models.ShiftCode("???"), 9*60, 18*60); got != 0 {
		t.Fatalf("unknown code hours = %v, want 0", got)
	}
}

func TestShiftLabelGlyphs(t *testing.T) {
	cases := []struct {
		code models.ShiftCode
		want string
	}{
		{models.ShiftEarlyA, "早"},
		{models.ShiftMidB, "中"},
		{models.ShiftLateC, "遅"},
		{models.ShiftMeeting, "議"},
	}
	for _, c := range cases {
		if got := ShiftLabel(c.code, 0, 0); got != c.want {
			t.Fatalf("ShiftLabel(%s) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestShiftLabelCustomRangeNormalizesToNamedShift(t *testing.T) {
	if got := ShiftLabel(models.ShiftCustom, models.EarlyStartMin, models.EarlyEndMin); got != "早" {
		t.Fatalf("early window custom range = %q, want 早", got)
	}
	if got := ShiftLabel(models.ShiftCustom, models.LateStartMin, models.LateEndMin); got != "遅" {
		t.Fatalf("late window custom range = %q, want 遅", got)
	}
}

func TestShiftLabelCustomRangeToken(t *testing.T) {
	// 10:40-16:10 quantizes to 10:30-16:00 and must not collapse to a glyph.
	start := QuantizeMinutes(10*60 + 40)
	end := QuantizeMinutes(16*60 + 10)
	got := ShiftLabel(models.ShiftCustom, start, end)
	if got != "10半-16" {
		t.Fatalf("custom token = %q, want 10半-16", got)
	}
}

func TestRequestLabelTotal(t *testing.T) {
	cases := map[models.RequestKind]string{
		models.RequestPaidLeave:    "有",
		models.RequestRequestedOff: "希",
		models.RequestMeeting:      "議",
		models.RequestShiftEarly:   "早",
		models.RequestShiftMid:     "中",
		models.RequestShiftLate:    "遅",
		models.RequestFreeTime:     "全",
	}
	for kind, want := range cases {
		if got := RequestLabel(models.RequestEntry{Kind: kind}); got != want {
			t.Fatalf("RequestLabel(%s) = %q, want %q", kind, got, want)
		}
	}
	custom := models.RequestEntry{Kind: models.RequestCustomRange, StartMin: 9 * 60, EndMin: 13*60 + 30}
	if got := RequestLabel(custom); got != "9-13半" {
		t.Fatalf("custom request label = %q, want 9-13半", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2026, 2); got != 28 {
		t.Fatalf("2026-02 days = %d, want 28", got)
	}
	if got := DaysInMonth(2028, 2); got != 29 {
		t.Fatalf("2028-02 days = %d, want 29", got)
	}
	if got := DaysInMonth(2026, 12); got != 31 {
		t.Fatalf("2026-12 days = %d, want 31", got)
	}
}

func TestMonthKeyUnpadded(t *testing.T) {
	if got := MonthKey(2026, 2); got != "2026-2" {
		t.Fatalf("MonthKey = %q, want 2026-2", got)
	}
}

func TestDefaultPlanningMonth(t *testing.T) {
	early := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	if y, m := DefaultPlanningMonth(early); y != 2026 || m != 2 {
		t.Fatalf("before the 15th: got %d-%d, want 2026-2", y, m)
	}
	late := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if y, m := DefaultPlanningMonth(late); y != 2026 || m != 3 {
		t.Fatalf("from the 15th: got %d-%d, want 2026-3", y, m)
	}
	yearEnd := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	if y, m := DefaultPlanningMonth(yearEnd); y != 2027 || m != 1 {
		t.Fatalf("year rollover: got %d-%d, want 2027-1", y, m)
	}
}
