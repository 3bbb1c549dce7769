package models

import "testing"

func TestRankIDDerivedAndOrdered(t *testing.T) {
	ranks := []Rank{RankStoreManager, RankLeader, RankEmployee, RankPartner, RankNewPartner}
	for i, r := range ranks {
		if got := r.ID(); got != i+1 {
			t.Fatalf("rank %s id = %d, want %d", r, got, i+1)
		}
	}
	if Rank("unknown").ID() != 0 {
		t.Fatalf("unknown rank must map to 0")
	}
	if Rank("unknown").Valid() {
		t.Fatalf("unknown rank must be invalid")
	}
}

func TestPartnerTierBoundary(t *testing.T) {
	if RankEmployee.IsPartnerTier() {
		t.Fatalf("employee (rank 3) is not a partner tier")
	}
	if !RankPartner.IsPartnerTier() || !RankNewPartner.IsPartnerTier() {
		t.Fatalf("partner tiers must be rank > 3")
	}
}

func TestDepartmentOrder(t *testing.T) {
	order := []Department{DeptSeasonal, DeptAppliance, DeptInformation, DeptTelecom, DeptNone}
	for i := 1; i < len(order); i++ {
		if order[i-1].Order() >= order[i].Order() {
			t.Fatalf("%s should precede %s", order[i-1], order[i])
		}
	}
	if Department("misc").Order() != DeptNone.Order() {
		t.Fatalf("unknown department should sort with unassigned")
	}
}

func TestDefaultSkillsCoversFixedSet(t *testing.T) {
	skills := DefaultSkills()
	if len(skills) != len(SkillKeys) {
		t.Fatalf("expected %d skills, got %d", len(SkillKeys), len(skills))
	}
	for _, key := range SkillKeys {
		if level, ok := skills[key]; !ok || level != 0 {
			t.Fatalf("skill %s should default to 0", key)
		}
	}
}

func TestRequestShiftCodeMapping(t *testing.T) {
	cases := map[RequestKind]ShiftCode{
		RequestShiftEarly: ShiftEarlyA,
		RequestShiftMid:   ShiftMidB,
		RequestShiftLate:  ShiftLateC,
	}
	for kind, want := range cases {
		code, ok := RequestShiftCode(kind)
		if !ok || code != want {
			t.Fatalf("RequestShiftCode(%s) = %s/%v, want %s", kind, code, ok, want)
		}
	}
	if _, ok := RequestShiftCode(RequestPaidLeave); ok {
		t.Fatalf("leave kinds have no shift code")
	}
}

func TestLabelsTotal(t *testing.T) {
	for _, r := range []Rank{RankStoreManager, RankLeader, RankEmployee, RankPartner, RankNewPartner} {
		if r.Label() == "" {
			t.Fatalf("rank %s has no label", r)
		}
	}
	for _, d := range []Department{DeptSeasonal, DeptAppliance, DeptInformation, DeptTelecom, DeptNone} {
		if d.Label() == "" {
			t.Fatalf("department %s has no label", d)
		}
	}
	for _, k := range SkillKeys {
		if SkillLabel(k) == k {
			t.Fatalf("skill %s has no localized label", k)
		}
	}
}
