package service

import (
	"sort"

	"github.com/storeshift/backend/internal/models"
)

// All checks here are advisory. The schedule is produced elsewhere and this
// service has no authority to reject it; it only annotates deficiencies.

type DayCheck struct {
	Day           int      `json:"day"`
	Sales         float64  `json:"sales"`
	HourCap       float64  `json:"hour_cap"`
	AssignedHours float64  `json:"assigned_hours"`
	OverCap       bool     `json:"over_cap"`
	LackingSkills []string `json:"lacking_skills"`
	OpenCount     int      `json:"open_count"`
	CloseCount    int      `json:"close_count"`
	OpenShort     bool     `json:"open_short"`
	CloseShort    bool     `json:"close_short"`
}

func (d DayCheck) Lacking() bool {
	return len(d.LackingSkills) > 0
}

type StaffUsage struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Known   bool   `json:"known"`
	Days    int    `json:"days"`
	MaxDays int    `json:"max_days"`
	OverMax bool   `json:"over_max"`
}

type MonthReport struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Days  []DayCheck   `json:"days"`
	Staff []StaffUsage `json:"staff"`
}

// CapForSales evaluates the two-point cap schedule for one day's projected
// sales: HoursLow at or below SalesLow, HoursHigh at or above SalesHigh,
// linear and monotonic in between. Returns 0 when the schedule is unset.
func CapForSales(c models.CapSchedule, sales float64) float64 {
	if !c.Enabled() {
		return 0
	}
	if sales <= c.SalesLow || c.SalesHigh <= c.SalesLow {
		return c.HoursLow
	}
	if sales >= c.SalesHigh {
		return c.HoursHigh
	}
	frac := (sales - c.SalesLow) / (c.SalesHigh - c.SalesLow)
	return c.HoursLow + frac*(c.HoursHigh-c.HoursLow)
}

// BuildMonthReport runs every advisory check for a month: per-day labor hours
// against the sales cap, per-skill proficiency sums against the configured
// minimums, opener/closer headcounts against the staffing minimums, and
// per-staff assigned days against their cap. Assignments for staff no longer
// in the registry are tolerated: their hours still count, but skill and
// key-holder contributions are unknown and their usage row is marked so.
func BuildMonthReport(staff []models.Staff, cfg models.MonthlyConfig, sched models.DeterminedSchedule) MonthReport {
	byID := make(map[string]models.Staff, len(staff))
	for _, s := range staff {
		byID[s.ID] = s
	}

	report := MonthReport{Year: sched.Year, Month: sched.Month}
	dayCounts := map[string]int{}

	for day := 1; day <= DaysInMonth(sched.Year, sched.Month); day++ {
		check := DayCheck{Day: day, Sales: cfg.DailySales[day]}
		skillSums := map[string]int{}
		working := 0

		for _, a := range sched.Days[day] {
			check.AssignedHours += WorkHours(a.Shift, a.StartMin, a.EndMin)
			if a.Shift == models.ShiftMeeting {
				continue
			}
			working++
			dayCounts[a.StaffID]++

			s, ok := byID[a.StaffID]
			if !ok {
				continue
			}
			for key, level := range s.Skills {
				skillSums[key] += level
			}
			if a.Shift == models.ShiftEarlyA && s.CanOpen {
				check.OpenCount++
			}
			if a.Shift == models.ShiftLateC && s.CanClose {
				check.CloseCount++
			}
		}

		for _, key := range models.SkillKeys {
			if min := cfg.MinSkills[key]; min > 0 && skillSums[key] < min {
				check.LackingSkills = append(check.LackingSkills, key)
			}
		}
		if limit := CapForSales(cfg.Caps, check.Sales); limit > 0 {
			check.HourCap = limit
			check.OverCap = check.AssignedHours > limit
		}
		if working > 0 {
			check.OpenShort = cfg.MinStaff.Open > 0 && check.OpenCount < cfg.MinStaff.Open
			check.CloseShort = cfg.MinStaff.Close > 0 && check.CloseCount < cfg.MinStaff.Close
		}
		report.Days = append(report.Days, check)
	}

	for _, s := range SortStaff(staff) {
		days := dayCounts[s.ID]
		report.Staff = append(report.Staff, StaffUsage{
			StaffID: s.ID,
			Name:    s.Name,
			Known:   true,
			Days:    days,
			MaxDays: s.MaxDays,
			OverMax: days > s.MaxDays,
		})
		delete(dayCounts, s.ID)
	}
	orphans := make([]string, 0, len(dayCounts))
	for id := range dayCounts {
		orphans = append(orphans, id)
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		report.Staff = append(report.Staff, StaffUsage{StaffID: id, Days: dayCounts[id]})
	}

	return report
}
