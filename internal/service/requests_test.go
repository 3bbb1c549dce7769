package service

import (
	"testing"

	"github.com/storeshift/backend/internal/models"
)

func TestNormalizeRequestSetQuantizes(t *testing.T) {
	entries := map[int]models.RequestEntry{
		20: {Kind: models.RequestCustomRange, StartMin: 10*60 + 40, EndMin: 16*60 + 10},
	}
	out := NormalizeRequestSet(entries)
	e := out[20]
	if e.StartMin != 10*60+30 || e.EndMin != 16*60 {
		t.Fatalf("expected 10:30-16:00, got %d-%d", e.StartMin, e.EndMin)
	}
}

func TestNormalizeRequestSetStripsTimesFromTimelessKinds(t *testing.T) {
	entries := map[int]models.RequestEntry{
		3: {Kind: models.RequestPaidLeave, StartMin: 9 * 60, EndMin: 17 * 60},
		7: {Kind: models.RequestFreeTime, StartMin: 8 * 60, EndMin: 22 * 60},
	}
	out := NormalizeRequestSet(entries)
	for day, e := range out {
		if e.StartMin != 0 || e.EndMin != 0 {
			t.Fatalf("day %d: times should be cleared for %s, got %d-%d", day, e.Kind, e.StartMin, e.EndMin)
		}
	}
}

func TestValidateRequestSetRoleRestriction(t *testing.T) {
	// Full-time tiers may only request leave.
	leaveOnly := map[int]models.RequestEntry{5: {Kind: models.RequestShiftEarly}}
	if err := ValidateRequestSet(models.RankEmployee, 2026, 2, leaveOnly); err == nil {
		t.Fatalf("employee requesting a named shift should be rejected")
	}
	ok := map[int]models.RequestEntry{
		5: {Kind: models.RequestPaidLeave},
		6: {Kind: models.RequestRequestedOff},
	}
	if err := ValidateRequestSet(models.RankStoreManager, 2026, 2, ok); err != nil {
		t.Fatalf("leave-only set should pass for a manager: %v", err)
	}

	// Partner tiers pick shifts but not requested-off.
	partner := map[int]models.RequestEntry{
		5:  {Kind: models.RequestShiftEarly},
		12: {Kind: models.RequestPaidLeave},
		13: {Kind: models.RequestFreeTime},
		20: {Kind: models.RequestCustomRange, StartMin: 10 * 60, EndMin: 16 * 60},
	}
	if err := ValidateRequestSet(models.RankPartner, 2026, 2, partner); err != nil {
		t.Fatalf("partner set should pass: %v", err)
	}
	if err := ValidateRequestSet(models.RankPartner, 2026, 2,
		map[int]models.RequestEntry{5: {Kind: models.RequestRequestedOff}}); err == nil {
		t.Fatalf("partner requesting requested_off should be rejected")
	}
}

func TestValidateRequestSetDayBounds(t *testing.T) {
	bad := map[int]models.RequestEntry{29: {Kind: models.RequestPaidLeave}}
	if err := ValidateRequestSet(models.RankEmployee, 2026, 2, bad); err == nil {
		t.Fatalf("day 29 of 2026-02 should be rejected")
	}
	if err := ValidateRequestSet(models.RankEmployee, 2028, 2, bad); err != nil {
		t.Fatalf("day 29 of 2028-02 (leap) should pass: %v", err)
	}
}

func TestValidateRequestSetRangeOrder(t *testing.T) {
	bad := map[int]models.RequestEntry{5: {Kind: models.RequestCustomRange, StartMin: 16 * 60, EndMin: 10 * 60}}
	if err := ValidateRequestSet(models.RankPartner, 2026, 2, bad); err == nil {
		t.Fatalf("inverted range should be rejected")
	}
}
