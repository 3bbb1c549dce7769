package models

import "time"

// Rank is the staff seniority tier. ID gives the strict ordering used for
// permissions and sorting; 1 is the highest authority.
type Rank string

const (
	RankStoreManager Rank = "store_manager"
	RankLeader       Rank = "leader"
	RankEmployee     Rank = "employee"
	RankPartner      Rank = "partner"
	RankNewPartner   Rank = "new_partner"
)

func (r Rank) ID() int {
	switch r {
	case RankStoreManager:
		return 1
	case RankLeader:
		return 2
	case RankEmployee:
		return 3
	case RankPartner:
		return 4
	case RankNewPartner:
		return 5
	default:
		return 0
	}
}

func (r Rank) Valid() bool {
	return r.ID() != 0
}

// IsPartnerTier reports whether the rank picks shifts rather than only leave.
func (r Rank) IsPartnerTier() bool {
	return r.ID() > 3
}

type Department string

const (
	DeptSeasonal    Department = "seasonal"
	DeptAppliance   Department = "appliance"
	DeptInformation Department = "information"
	DeptTelecom     Department = "telecom"
	DeptNone        Department = "none"
)

// Order is the fixed department precedence for presentation; unassigned sorts last.
func (d Department) Order() int {
	switch d {
	case DeptSeasonal:
		return 1
	case DeptAppliance:
		return 2
	case DeptInformation:
		return 3
	case DeptTelecom:
		return 4
	default:
		return 5
	}
}

func (d Department) Valid() bool {
	switch d {
	case DeptSeasonal, DeptAppliance, DeptInformation, DeptTelecom, DeptNone:
		return true
	}
	return false
}

// SkillKeys is the fixed skill set, in canonical display order.
var SkillKeys = []string{"fridge", "washing", "ac", "tv", "mobile", "pc"}

func ValidSkillKey(key string) bool {
	for _, k := range SkillKeys {
		if k == key {
			return true
		}
	}
	return false
}

type Staff struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Rank       Rank           `json:"rank"`
	RankID     int            `json:"rank_id"`
	Department Department     `json:"department"`
	MaxDays    int            `json:"max_days"`
	CanOpen    bool           `json:"can_open"`
	CanClose   bool           `json:"can_close"`
	Priority   int            `json:"priority"`
	Skills     map[string]int `json:"skills"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// DefaultSkills returns the full skill map with every proficiency at zero.
func DefaultSkills() map[string]int {
	m := make(map[string]int, len(SkillKeys))
	for _, k := range SkillKeys {
		m[k] = 0
	}
	return m
}

// RequestKind tags one day of a staff member's availability submission.
type RequestKind string

const (
	RequestPaidLeave    RequestKind = "paid_leave"
	RequestRequestedOff RequestKind = "requested_off"
	RequestMeeting      RequestKind = "meeting"
	RequestShiftEarly   RequestKind = "shift_early"
	RequestShiftMid     RequestKind = "shift_mid"
	RequestShiftLate    RequestKind = "shift_late"
	RequestFreeTime     RequestKind = "free_time"
	RequestCustomRange  RequestKind = "custom_range"
)

func (k RequestKind) Valid() bool {
	switch k {
	case RequestPaidLeave, RequestRequestedOff, RequestMeeting,
		RequestShiftEarly, RequestShiftMid, RequestShiftLate,
		RequestFreeTime, RequestCustomRange:
		return true
	}
	return false
}

// HasTimeRange reports whether start/end minutes are meaningful for the kind.
func (k RequestKind) HasTimeRange() bool {
	return k == RequestCustomRange
}

// RequestEntry is one day's entry. StartMin/EndMin are minutes from midnight,
// populated only for custom_range and always quantized to the half hour.
type RequestEntry struct {
	Kind     RequestKind `json:"kind"`
	StartMin int         `json:"start_min,omitempty"`
	EndMin   int         `json:"end_min,omitempty"`
}

// RequestSet is one staff member's submission for a month. Days without an
// entry carry no preference.
type RequestSet struct {
	StaffID   string               `json:"staff_id"`
	Year      int                  `json:"year"`
	Month     int                  `json:"month"`
	Entries   map[int]RequestEntry `json:"entries"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// CapSchedule is the two-point sales-to-hours cap. Sales at or below SalesLow
// allow HoursLow total labor hours, at or above SalesHigh allow HoursHigh,
// linear in between. The zero value means no cap.
type CapSchedule struct {
	SalesLow  float64 `json:"sales_low"`
	HoursLow  float64 `json:"hours_low"`
	SalesHigh float64 `json:"sales_high"`
	HoursHigh float64 `json:"hours_high"`
}

func (c CapSchedule) Enabled() bool {
	return c.HoursLow > 0 || c.HoursHigh > 0
}

type StaffMinimums struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// MonthlyConfig holds the per-month planning parameters. Sales figures are in
// man-yen. Saves merge into the stored document, they never overwrite it.
type MonthlyConfig struct {
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	DailySales map[int]float64  `json:"daily_sales"`
	Caps       CapSchedule      `json:"caps"`
	MinSkills  map[string]int   `json:"min_skills"`
	MinStaff   StaffMinimums    `json:"min_staff"`
	Meetings   map[int][]string `json:"meetings"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func EmptyMonthlyConfig(year, month int) MonthlyConfig {
	return MonthlyConfig{
		Year:       year,
		Month:      month,
		DailySales: map[int]float64{},
		MinSkills:  map[string]int{},
		Meetings:   map[int][]string{},
	}
}

// ShiftCode identifies a determined assignment's shift. A, B and C are the
// early, mid and late named shifts produced by the planner; meetings and
// custom ranges come from config and manual edits.
type ShiftCode string

const (
	ShiftEarlyA  ShiftCode = "A"
	ShiftMidB    ShiftCode = "B"
	ShiftLateC   ShiftCode = "C"
	ShiftMeeting ShiftCode = "MTG"
	ShiftCustom  ShiftCode = "CUSTOM"
)

// Assignment is one staffed slot in the determined schedule. StartMin/EndMin
// are only populated for custom ranges.
type Assignment struct {
	StaffID  string    `json:"staff_id"`
	Shift    ShiftCode `json:"shift"`
	StartMin int       `json:"start_min,omitempty"`
	EndMin   int       `json:"end_min,omitempty"`
}

// DeterminedSchedule is the externally computed month plan this service
// reports against but does not produce.
type DeterminedSchedule struct {
	Year      int                  `json:"year"`
	Month     int                  `json:"month"`
	Days      map[int][]Assignment `json:"days"`
	CreatedAt time.Time            `json:"created_at"`
}

func EmptyDeterminedSchedule(year, month int) DeterminedSchedule {
	return DeterminedSchedule{Year: year, Month: month, Days: map[int][]Assignment{}}
}

// Named shift windows, minutes from midnight. Each spans nine hours and is
// worth a fixed eight labor hours once the unpaid break is taken out.
const (
	EarlyStartMin = 9 * 60
	EarlyEndMin   = 18 * 60
	MidStartMin   = 11 * 60
	MidEndMin     = 20 * 60
	LateStartMin  = 13 * 60
	LateEndMin    = 22 * 60
)

// NamedShiftHours is the labor value of any named shift.
const NamedShiftHours = 8.0

// RequestShiftCode maps a named-shift request kind to its planner shift code.
func RequestShiftCode(k RequestKind) (ShiftCode, bool) {
	switch k {
	case RequestShiftEarly:
		return ShiftEarlyA, true
	case RequestShiftMid:
		return ShiftMidB, true
	case RequestShiftLate:
		return ShiftLateC, true
	}
	return "", false
}
