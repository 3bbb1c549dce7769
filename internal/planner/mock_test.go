package planner

import (
	"context"
	"testing"

	"github.com/storeshift/backend/internal/models"
)

type fakeStorage struct {
	staff []models.Staff
	sets  []models.RequestSet
	saved *models.DeterminedSchedule
}

func (f *fakeStorage) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return f.staff, nil
}

func (f *fakeStorage) ListRequestSets(ctx context.Context, year, month int) ([]models.RequestSet, error) {
	return f.sets, nil
}

func (f *fakeStorage) PutDeterminedSchedule(ctx context.Context, sched models.DeterminedSchedule) error {
	f.saved = &sched
	return nil
}

func TestMockPlannerHonorsRequests(t *testing.T) {
	storage := &fakeStorage{
		staff: []models.Staff{{ID: "s1", Rank: models.RankPartner}},
		sets: []models.RequestSet{{
			StaffID: "s1", Year: 2026, Month: 2,
			Entries: map[int]models.RequestEntry{
				5:  {Kind: models.RequestShiftEarly},
				12: {Kind: models.RequestPaidLeave},
				20: {Kind: models.RequestCustomRange, StartMin: 10 * 60, EndMin: 16 * 60},
			},
		}},
	}

	msg, err := MockPlanner{Store: storage}.Compute(context.Background(), 2026, 2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if msg == "" {
		t.Fatalf("expected a status message")
	}
	if storage.saved == nil {
		t.Fatalf("schedule was not persisted")
	}

	sched := *storage.saved
	if len(sched.Days[5]) != 1 || sched.Days[5][0].Shift != models.ShiftEarlyA {
		t.Fatalf("day 5 should be an early shift, got %+v", sched.Days[5])
	}
	if len(sched.Days[12]) != 0 {
		t.Fatalf("paid leave day should have no assignment, got %+v", sched.Days[12])
	}
	a := sched.Days[20]
	if len(a) != 1 || a[0].Shift != models.ShiftCustom || a[0].StartMin != 10*60 || a[0].EndMin != 16*60 {
		t.Fatalf("day 20 should keep the custom range, got %+v", a)
	}
}

func TestMockPlannerDeterministicForFreeTime(t *testing.T) {
	storage := &fakeStorage{
		staff: []models.Staff{{ID: "s1", Rank: models.RankPartner}},
		sets: []models.RequestSet{{
			StaffID: "s1", Year: 2026, Month: 2,
			Entries: map[int]models.RequestEntry{8: {Kind: models.RequestFreeTime}},
		}},
	}

	if _, err := (MockPlanner{Store: storage}).Compute(context.Background(), 2026, 2); err != nil {
		t.Fatalf("compute: %v", err)
	}
	first := storage.saved.Days[8][0].Shift
	if _, err := (MockPlanner{Store: storage}).Compute(context.Background(), 2026, 2); err != nil {
		t.Fatalf("compute: %v", err)
	}
	if second := storage.saved.Days[8][0].Shift; second != first {
		t.Fatalf("free-time assignment not deterministic: %s then %s", first, second)
	}
}

func TestMockPlannerSkipsOrphanedSets(t *testing.T) {
	storage := &fakeStorage{
		staff: []models.Staff{},
		sets: []models.RequestSet{{
			StaffID: "deleted", Year: 2026, Month: 2,
			Entries: map[int]models.RequestEntry{5: {Kind: models.RequestShiftEarly}},
		}},
	}
	if _, err := (MockPlanner{Store: storage}).Compute(context.Background(), 2026, 2); err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(storage.saved.Days) != 0 {
		t.Fatalf("orphaned submission should not be scheduled, got %+v", storage.saved.Days)
	}
}
