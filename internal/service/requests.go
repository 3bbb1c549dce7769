package service

import (
	"fmt"

	"github.com/storeshift/backend/internal/models"
)

// NormalizeRequestSet re-applies time quantization to every entry and strips
// stray start/end values from kinds that carry no time range. Quantization is
// idempotent, so already-clean sets pass through unchanged.
func NormalizeRequestSet(entries map[int]models.RequestEntry) map[int]models.RequestEntry {
	out := make(map[int]models.RequestEntry, len(entries))
	for day, e := range entries {
		if e.Kind.HasTimeRange() {
			e.StartMin = QuantizeMinutes(e.StartMin)
			e.EndMin = QuantizeMinutes(e.EndMin)
		} else {
			e.StartMin = 0
			e.EndMin = 0
		}
		out[day] = e
	}
	return out
}

// ValidateRequestSet checks a normalized submission against the calendar and
// the submitter's rank. Full-time tiers (rank 1-3) may only request leave;
// partner tiers pick named shifts, a time range, free availability, or paid
// leave. The whole set is rejected on the first violation so a submit never
// writes partially.
func ValidateRequestSet(rank models.Rank, year, month int, entries map[int]models.RequestEntry) error {
	days := DaysInMonth(year, month)
	for day, e := range entries {
		if day < 1 || day > days {
			return fmt.Errorf("day %d is outside %d-%d", day, year, month)
		}
		if !e.Kind.Valid() {
			return fmt.Errorf("day %d: unknown request kind %q", day, e.Kind)
		}
		if !kindAllowedForRank(rank, e.Kind) {
			return fmt.Errorf("day %d: kind %q not allowed for rank %q", day, e.Kind, rank)
		}
		if e.Kind.HasTimeRange() && e.EndMin <= e.StartMin {
			return fmt.Errorf("day %d: time range must end after it starts", day)
		}
	}
	return nil
}

func kindAllowedForRank(rank models.Rank, k models.RequestKind) bool {
	if rank.IsPartnerTier() {
		switch k {
		case models.RequestShiftEarly, models.RequestShiftMid, models.RequestShiftLate,
			models.RequestCustomRange, models.RequestFreeTime, models.RequestPaidLeave:
			return true
		}
		return false
	}
	switch k {
	case models.RequestPaidLeave, models.RequestRequestedOff:
		return true
	}
	return false
}
