package service

import "github.com/storeshift/backend/internal/models"

// ConfigPatch is a partial monthly-config update. Nil sections leave the
// stored value alone; supplied sections merge per key.
type ConfigPatch struct {
	DailySales map[int]*float64      `json:"daily_sales"`
	Caps       *models.CapSchedule   `json:"caps"`
	MinSkills  map[string]int        `json:"min_skills"`
	MinStaff   *models.StaffMinimums `json:"min_staff"`
	Meetings   map[int][]string      `json:"meetings"`
}

// MergeMonthlyConfig folds a patch into the current config. DailySales merges
// per day, with a null value deleting that day; MinSkills merges per skill;
// Meetings replaces per day, with an empty list clearing the day. A save
// never overwrites sections the patch does not mention.
func MergeMonthlyConfig(cur models.MonthlyConfig, patch ConfigPatch) models.MonthlyConfig {
	if cur.DailySales == nil {
		cur.DailySales = map[int]float64{}
	}
	if cur.MinSkills == nil {
		cur.MinSkills = map[string]int{}
	}
	if cur.Meetings == nil {
		cur.Meetings = map[int][]string{}
	}

	for day, v := range patch.DailySales {
		if v == nil {
			delete(cur.DailySales, day)
			continue
		}
		cur.DailySales[day] = *v
	}
	if patch.Caps != nil {
		cur.Caps = *patch.Caps
	}
	for key, v := range patch.MinSkills {
		cur.MinSkills[key] = v
	}
	if patch.MinStaff != nil {
		cur.MinStaff = *patch.MinStaff
	}
	for day, ids := range patch.Meetings {
		if len(ids) == 0 {
			delete(cur.Meetings, day)
			continue
		}
		cur.Meetings[day] = ids
	}
	return cur
}
