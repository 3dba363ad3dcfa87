package evaluation

import (
	"errors"
	"strings"
	"time"

	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// Domain errors
var (
	ErrEmptyClubID = errors.New("club ID cannot be empty")
)

// Record is the session evaluation of one season month.
type Record struct {
	Month            season.MonthKey `json:"month"`
	PlannedSessions  int             `json:"planned_sessions"`
	ExecutedSessions int             `json:"executed_sessions"`
	Percentage       int             `json:"percentage"`
}

// Sheet is a club's evaluation document for one academic year.
type Sheet struct {
	ClubID       string              `json:"club_id"`
	AcademicYear season.AcademicYear `json:"academic_year"`
	Records      []Record            `json:"records"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewSheet returns an empty sheet with one zeroed record per season month.
func NewSheet(clubID string, year season.AcademicYear) Sheet {
	records := make([]Record, len(season.Months))
	for i, m := range season.Months {
		records[i] = Record{Month: m.Key}
	}
	return Sheet{ClubID: clubID, AcademicYear: year, Records: records}
}

// Validate checks the sheet shape.
// PRE: none
// POST: Returns nil if valid, the first violation otherwise
func (s *Sheet) Validate() error {
	if strings.TrimSpace(s.ClubID) == "" {
		return ErrEmptyClubID
	}
	if err := s.AcademicYear.Validate(); err != nil {
		return err
	}
	for _, r := range s.Records {
		if _, err := season.ParseMonthKey(string(r.Month)); err != nil {
			return err
		}
	}
	return nil
}

// Normalize clamps negative counts to 0 and recomputes the percentage.
func (r Record) Normalize() Record {
	r.PlannedSessions = max(0, r.PlannedSessions)
	r.ExecutedSessions = max(0, r.ExecutedSessions)
	r.Percentage = plan.Percentage(r.ExecutedSessions, r.PlannedSessions)
	return r
}

// WithRecord returns a copy of the sheet with the record for r.Month replaced or appended.
// POST: The stored record is normalized
func (s Sheet) WithRecord(r Record) Sheet {
	out := s
	out.Records = make([]Record, 0, len(s.Records)+1)
	replaced := false
	for _, existing := range s.Records {
		if existing.Month == r.Month {
			out.Records = append(out.Records, r.Normalize())
			replaced = true
			continue
		}
		out.Records = append(out.Records, existing)
	}
	if !replaced {
		out.Records = append(out.Records, r.Normalize())
	}
	return out
}

// Record returns the record stored for a month.
func (s Sheet) Record(month season.MonthKey) (Record, bool) {
	for _, r := range s.Records {
		if r.Month == month {
			return r, true
		}
	}
	return Record{}, false
}

// Observations converts the sheet into the figures the plan reconciler consumes.
func (s Sheet) Observations() map[season.MonthKey]plan.Observation {
	obs := make(map[season.MonthKey]plan.Observation, len(s.Records))
	for _, r := range s.Records {
		obs[r.Month] = plan.Observation{Planned: r.PlannedSessions, Executed: r.ExecutedSessions}
	}
	return obs
}
