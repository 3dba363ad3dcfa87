package timetable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Day of week constants
const (
	Saturday  = "saturday"
	Sunday    = "sunday"
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
)

// ValidDays lists the days in the club's display order (weeks start on Saturday).
var ValidDays = []string{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// Domain errors
var (
	ErrEmptyGroup     = errors.New("group cannot be empty")
	ErrInvalidDay     = errors.New("day must be a valid day of the week")
	ErrEmptyStartTime = errors.New("start time cannot be empty")
	ErrEmptyEndTime   = errors.New("end time cannot be empty")
	ErrRowNotFound    = errors.New("timetable row not found")
	ErrEmptyClubID    = errors.New("club ID cannot be empty")
)

// Row is one recurring weekly session of a training group.
// Each row carries its own times; durations are never read from neighbouring rows.
type Row struct {
	ID        string `json:"id"`
	Group     string `json:"group"` // usually a category label
	Day       string `json:"day"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	Venue     string `json:"venue,omitempty"`
}

// Timetable is a club's weekly timetable document.
type Timetable struct {
	ClubID    string    `json:"club_id"`
	Rows      []Row     `json:"rows"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Row has valid data.
// PRE: Row struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Row) Validate() error {
	if strings.TrimSpace(r.Group) == "" {
		return ErrEmptyGroup
	}
	if !slices.Contains(ValidDays, r.Day) {
		return ErrInvalidDay
	}
	if strings.TrimSpace(r.StartTime) == "" {
		return ErrEmptyStartTime
	}
	if strings.TrimSpace(r.EndTime) == "" {
		return ErrEmptyEndTime
	}
	if _, err := r.DurationHours(); err != nil {
		return err
	}
	return nil
}

// DurationHours returns the session duration in hours.
// PRE: StartTime and EndTime are in HH:MM format
// POST: Returns duration as float64 hours, or error if times can't be parsed
func (r *Row) DurationHours() (float64, error) {
	start, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", r.StartTime, err)
	}
	end, err := time.Parse("15:04", r.EndTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", r.EndTime, err)
	}
	dur := end.Sub(start)
	if dur <= 0 {
		dur += 24 * time.Hour // overnight sessions
	}
	return dur.Hours(), nil
}

// Validate checks every row of the timetable.
func (t *Timetable) Validate() error {
	if strings.TrimSpace(t.ClubID) == "" {
		return ErrEmptyClubID
	}
	for i := range t.Rows {
		if err := t.Rows[i].Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// DurationHours returns the duration of the row with the given ID.
func (t Timetable) DurationHours(rowID string) (float64, error) {
	for i := range t.Rows {
		if t.Rows[i].ID == rowID {
			return t.Rows[i].DurationHours()
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
}

// WeeklyHours sums the durations of a group's rows. Unparseable rows count as zero.
func (t Timetable) WeeklyHours(group string) float64 {
	total := 0.0
	for i := range t.Rows {
		if t.Rows[i].Group != group {
			continue
		}
		if h, err := t.Rows[i].DurationHours(); err == nil {
			total += h
		}
	}
	return total
}

// Sorted returns the rows ordered by day then start time.
func (t Timetable) Sorted() []Row {
	out := slices.Clone(t.Rows)
	slices.SortStableFunc(out, func(a, b Row) int {
		da, db := slices.Index(ValidDays, a.Day), slices.Index(ValidDays, b.Day)
		if da != db {
			return da - db
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out
}
