package db

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/storeshift/backend/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	store, err := New(context.Background(), url)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func replaceSet(t *testing.T, store *Store, set models.RequestSet) {
	t.Helper()
	err := store.WithTx(context.Background(), func(tx pgx.Tx) error {
		if err := store.DeleteRequestSet(context.Background(), tx, set.StaffID, set.Year, set.Month); err != nil {
			return err
		}
		_, err := store.InsertRequestSet(context.Background(), tx, set)
		return err
	})
	if err != nil {
		t.Fatalf("replace request set: %v", err)
	}
}

func TestResubmissionRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.CreateStaff(ctx, models.Staff{
		Name: "テスト", Rank: models.RankPartner, RankID: models.RankPartner.ID(),
		Department: models.DeptSeasonal, MaxDays: 22, Priority: 2, Skills: models.DefaultSkills(),
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	defer func() { _ = store.DeleteStaff(ctx, id) }()

	r1 := models.RequestSet{StaffID: id, Year: 2099, Month: 1, Entries: map[int]models.RequestEntry{
		3: {Kind: models.RequestShiftEarly},
		9: {Kind: models.RequestPaidLeave},
	}}
	replaceSet(t, store, r1)

	r2 := models.RequestSet{StaffID: id, Year: 2099, Month: 1, Entries: map[int]models.RequestEntry{
		5: {Kind: models.RequestShiftLate},
	}}
	replaceSet(t, store, r2)

	got, err := store.GetRequestSet(ctx, id, 2099, 1)
	if err != nil {
		t.Fatalf("get request set: %v", err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected only R2 entries to survive, got %+v", got.Entries)
	}
	if got.Entries[5].Kind != models.RequestShiftLate {
		t.Fatalf("day 5 = %+v, want late shift", got.Entries[5])
	}
	if _, ok := got.Entries[3]; ok {
		t.Fatalf("stale day 3 from R1 lingered after resubmit")
	}

	// Cleanup the request rows as well.
	err = store.WithTx(ctx, func(tx pgx.Tx) error {
		return store.DeleteRequestSet(ctx, tx, id, 2099, 1)
	})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestRankIDNeverDivergesOnUpdate(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.CreateStaff(ctx, models.Staff{
		Name: "昇格", Rank: models.RankNewPartner, RankID: models.RankNewPartner.ID(),
		Department: models.DeptNone, MaxDays: 22, Priority: 2, Skills: models.DefaultSkills(),
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	defer func() { _ = store.DeleteStaff(ctx, id) }()

	rank := models.RankLeader
	if err := store.UpdateStaff(ctx, id, StaffUpdate{Rank: &rank}); err != nil {
		t.Fatalf("update rank: %v", err)
	}
	got, err := store.GetStaff(ctx, id)
	if err != nil {
		t.Fatalf("get staff: %v", err)
	}
	if got.Rank != models.RankLeader || got.RankID != models.RankLeader.ID() {
		t.Fatalf("rank/rank_id diverged: %s/%d", got.Rank, got.RankID)
	}
}
