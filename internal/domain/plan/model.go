package plan

import (
	"errors"
	"strings"
	"time"

	"clubdesk/internal/domain/season"
)

// Defaults applied to every week slot of a freshly opened plan.
const (
	DefaultSessions  = 2
	DefaultHours     = 3
	DefaultPhysical  = 30
	DefaultTechnical = 40
	DefaultTactical  = 30
)

// Domain errors
var (
	ErrEmptyClubID    = errors.New("club ID cannot be empty")
	ErrMonthNotFound  = errors.New("month not found in plan")
	ErrWeekNotFound   = errors.New("week not found in month")
	ErrDuplicateMonth = errors.New("plan contains a month twice")
	ErrTooManyWeeks   = errors.New("month cannot hold more than five weeks")
)

// WeekSlot is one row of a month's training plan.
type WeekSlot struct {
	Index           int     `json:"index"`
	SessionsPlanned int     `json:"sessions"`
	HoursPlanned    float64 `json:"hours"`
	Physical        int     `json:"physical"`
	Technical       int     `json:"technical"`
	Tactical        int     `json:"tactical"`
	TestPhysical    bool    `json:"test_physical"`
	TestTechnical   bool    `json:"test_technical"`
	TestTactical    bool    `json:"test_tactical"`
}

// MonthPlan holds the week slots and the executed-session figures of one season month.
// INVARIANT: after Reconcile, sum(Weeks.SessionsPlanned) <= CompletedSessions
type MonthPlan struct {
	Month             season.MonthKey `json:"month"`
	Weeks             []WeekSlot      `json:"weeks"`
	CompletedSessions int             `json:"completed_sessions"`
	Completed         int             `json:"completed"` // legacy mirror of CompletedSessions
	NotCompleted      int             `json:"not_completed"`
	Percentage        int             `json:"percentage"`
	Total             int             `json:"total"`
}

// Plan is the annual training plan document of one club.
type Plan struct {
	ClubID       string              `json:"club_id"`
	AcademicYear season.AcademicYear `json:"academic_year"`
	Months       []MonthPlan         `json:"months"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// DefaultWeek returns a week slot carrying the default targets.
func DefaultWeek(index int) WeekSlot {
	return WeekSlot{
		Index:           index,
		SessionsPlanned: DefaultSessions,
		HoursPlanned:    DefaultHours,
		Physical:        DefaultPhysical,
		Technical:       DefaultTechnical,
		Tactical:        DefaultTactical,
	}
}

// NewDefault builds the plan used when a club opens a season for the first time.
// PRE: clubID is non-empty
// POST: Returns ten months, each with one default slot per calendar week
func NewDefault(clubID string, year season.AcademicYear) Plan {
	months := make([]MonthPlan, 0, len(season.Months))
	for _, m := range season.Months {
		weeks := season.BuildWeeks(year.CalendarYear(m.Number), m.Number)
		slots := make([]WeekSlot, len(weeks))
		for i, w := range weeks {
			slots[i] = DefaultWeek(w.Index)
		}
		months = append(months, MonthPlan{Month: m.Key, Weeks: slots})
	}
	return Plan{ClubID: clubID, AcademicYear: year, Months: months}
}

// Validate checks the plan document shape.
// PRE: none
// POST: Returns nil if valid, the first violation otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.ClubID) == "" {
		return ErrEmptyClubID
	}
	if err := p.AcademicYear.Validate(); err != nil {
		return err
	}
	seen := make(map[season.MonthKey]bool, len(p.Months))
	for _, m := range p.Months {
		if _, err := season.ParseMonthKey(string(m.Month)); err != nil {
			return err
		}
		if seen[m.Month] {
			return ErrDuplicateMonth
		}
		seen[m.Month] = true
		if len(m.Weeks) > season.MaxWeeksPerMonth {
			return ErrTooManyWeeks
		}
	}
	return nil
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	out.Months = make([]MonthPlan, len(p.Months))
	for i, m := range p.Months {
		out.Months[i] = m.Clone()
	}
	return out
}

// Month returns a copy of the named month.
func (p Plan) Month(key season.MonthKey) (MonthPlan, bool) {
	for _, m := range p.Months {
		if m.Month == key {
			return m.Clone(), true
		}
	}
	return MonthPlan{}, false
}

// WithMonth returns a copy of the plan with the named month replaced.
// PRE: m.Month exists in the plan
// POST: Other months are untouched; returns ErrMonthNotFound otherwise
func (p Plan) WithMonth(m MonthPlan) (Plan, error) {
	out := p.Clone()
	for i := range out.Months {
		if out.Months[i].Month == m.Month {
			out.Months[i] = m.Clone()
			return out, nil
		}
	}
	return Plan{}, ErrMonthNotFound
}

// Clone returns a deep copy of the month.
func (m MonthPlan) Clone() MonthPlan {
	out := m
	out.Weeks = make([]WeekSlot, len(m.Weeks))
	copy(out.Weeks, m.Weeks)
	return out
}

// SessionsSum returns the total planned sessions over all weeks.
func (m MonthPlan) SessionsSum() int {
	sum := 0
	for _, w := range m.Weeks {
		sum += w.SessionsPlanned
	}
	return sum
}

// Authoritative returns the executed-session figure that bounds the month.
// A zero CompletedSessions falls back to the legacy Completed field.
func (m MonthPlan) Authoritative() int {
	if m.CompletedSessions > 0 {
		return m.CompletedSessions
	}
	if m.Completed > 0 {
		return m.Completed
	}
	return 0
}

// Consistent reports whether the weekly sessions fit under the authoritative figure.
func (m MonthPlan) Consistent() bool {
	return m.SessionsSum() <= m.Authoritative()
}

func (m MonthPlan) weekPos(index int) int {
	for i, w := range m.Weeks {
		if w.Index == index {
			return i
		}
	}
	return -1
}
