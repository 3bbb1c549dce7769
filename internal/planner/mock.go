package planner

import (
	"context"
	"fmt"

	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/utils"
)

// MockPlanner stands in for the optimizer during development. It performs no
// optimization: it grants every submitted request literally, hands free-time
// staff a deterministic named shift, and skips everyone who asked for leave
// or submitted nothing.
type MockPlanner struct {
	Store Storage
}

func (m MockPlanner) Compute(ctx context.Context, year, month int) (string, error) {
	staff, err := m.Store.ListStaff(ctx)
	if err != nil {
		return "", err
	}
	known := map[string]bool{}
	for _, s := range staff {
		known[s.ID] = true
	}

	sets, err := m.Store.ListRequestSets(ctx, year, month)
	if err != nil {
		return "", err
	}

	sched := models.EmptyDeterminedSchedule(year, month)
	codes := []models.ShiftCode{models.ShiftEarlyA, models.ShiftMidB, models.ShiftLateC}
	for _, set := range sets {
		if !known[set.StaffID] {
			continue
		}
		for day, e := range set.Entries {
			var a models.Assignment
			switch {
			case e.Kind == models.RequestCustomRange:
				a = models.Assignment{StaffID: set.StaffID, Shift: models.ShiftCustom, StartMin: e.StartMin, EndMin: e.EndMin}
			case e.Kind == models.RequestFreeTime:
				h := utils.HashStringToUint64(fmt.Sprintf("%s/%d-%d/%d", set.StaffID, year, month, day))
				a = models.Assignment{StaffID: set.StaffID, Shift: codes[int(h)%len(codes)]}
			default:
				code, ok := models.RequestShiftCode(e.Kind)
				if !ok {
					continue
				}
				a = models.Assignment{StaffID: set.StaffID, Shift: code}
			}
			sched.Days[day] = append(sched.Days[day], a)
		}
	}

	if err := m.Store.PutDeterminedSchedule(ctx, sched); err != nil {
		return "", err
	}
	return fmt.Sprintf("Shift created successfully! (%d-%d, mock planner)", year, month), nil
}
