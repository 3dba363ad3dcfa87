package projections

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
)

// ErrInvalidMonthPrefix is returned when a month is not in YYYY-MM form.
var ErrInvalidMonthPrefix = errors.New("month must be YYYY-MM")

// RegisterReader defines the attendance register methods needed by projections.
type RegisterReader interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (absence.Register, error)
}

// AthleteReader lists a club's athletes.
type AthleteReader interface {
	ListByClub(ctx context.Context, clubID string) ([]roster.Athlete, error)
}

// GetAttendanceStatsQuery carries input for the attendance stats projection.
type GetAttendanceStatsQuery struct {
	ClubID       string
	AcademicYear season.AcademicYear
	Month        string // YYYY-MM
}

// GetAttendanceStatsDeps holds dependencies for the attendance stats projection.
type GetAttendanceStatsDeps struct {
	RegisterStore RegisterReader
	AthleteStore  AthleteReader
}

// AthleteAttendance is one roster row of the monthly attendance sheet.
type AthleteAttendance struct {
	AthleteID string `json:"athlete_id"`
	Name      string `json:"name"`
	absence.Stats
	AbsentDays []string `json:"absent_days"`
}

// AttendanceStatsResult is the monthly attendance sheet of a club.
type AttendanceStatsResult struct {
	Month     string              `json:"month"`
	TotalDays int                 `json:"total_days"`
	Athletes  []AthleteAttendance `json:"athletes"`
	Summary   absence.Summary     `json:"summary"`
}

// ParseMonthPrefix validates a YYYY-MM month and returns its day count.
func ParseMonthPrefix(prefix string) (int, error) {
	t, err := time.Parse("2006-01", prefix)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonthPrefix, prefix)
	}
	return season.DaysInMonth(t.Year(), t.Month()), nil
}

// QueryGetAttendanceStats computes per-athlete attendance for one month.
// PRE: query.Month is YYYY-MM
// POST: Every athlete of the club appears once; rates are within [0, 100]
func QueryGetAttendanceStats(ctx context.Context, query GetAttendanceStatsQuery, deps GetAttendanceStatsDeps) (AttendanceStatsResult, error) {
	totalDays, err := ParseMonthPrefix(query.Month)
	if err != nil {
		return AttendanceStatsResult{}, err
	}

	reg, err := deps.RegisterStore.Get(ctx, query.ClubID, query.AcademicYear)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return AttendanceStatsResult{}, fmt.Errorf("load register: %w", err)
	}
	athletes, err := deps.AthleteStore.ListByClub(ctx, query.ClubID)
	if err != nil {
		return AttendanceStatsResult{}, fmt.Errorf("list athletes: %w", err)
	}
	return buildAttendanceStats(query.Month, totalDays, reg.Records, athletes), nil
}

func buildAttendanceStats(month string, totalDays int, records []absence.Record, athletes []roster.Athlete) AttendanceStatsResult {
	result := AttendanceStatsResult{Month: month, TotalDays: totalDays, Athletes: []AthleteAttendance{}}
	ids := make([]string, 0, len(athletes))
	for _, a := range athletes {
		ids = append(ids, a.ID)
		row := AthleteAttendance{
			AthleteID:  a.ID,
			Name:       a.Name,
			Stats:      absence.ComputeStats(a.ID, month, records, totalDays),
			AbsentDays: []string{},
		}
		for _, r := range records {
			if r.AthleteID == a.ID && r.IsAbsent && strings.HasPrefix(r.Date, month) {
				row.AbsentDays = append(row.AbsentDays, r.Date)
			}
		}
		result.Athletes = append(result.Athletes, row)
	}
	result.Summary = absence.MonthSummary(records, ids, month, totalDays)
	return result
}
