package absence

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"clubdesk/internal/domain/season"
)

// Domain errors
var (
	ErrEmptyAthleteID = errors.New("absence must reference an athlete")
	ErrInvalidDate    = errors.New("absence date must be YYYY-MM-DD")
	ErrEmptyClubID    = errors.New("club ID cannot be empty")
	ErrDuplicate      = errors.New("duplicate absence record")
	ErrOutsideSeason  = errors.New("absence date is outside the academic year")
)

// Record marks an athlete absent (or explicitly present) on one day.
// A missing record means present.
type Record struct {
	AthleteID string `json:"athlete_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	IsAbsent  bool   `json:"is_absent"`
}

// Validate checks the record fields.
// PRE: none
// POST: Returns nil if valid, error otherwise
func (r *Record) Validate() error {
	if strings.TrimSpace(r.AthleteID) == "" {
		return ErrEmptyAthleteID
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// CheckInSeason verifies an ISO date falls inside the academic year's September to June window.
// PRE: none
// POST: Returns ErrInvalidDate or ErrOutsideSeason on failure
func CheckInSeason(date string, year season.AcademicYear) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}
	if !year.Contains(d) {
		return fmt.Errorf("%w: %s not in %d-%d", ErrOutsideSeason, date, int(year), int(year)+1)
	}
	return nil
}

// Register is a club's attendance document for one academic year.
// INVARIANT: at most one record per (AthleteID, Date)
type Register struct {
	ClubID       string              `json:"club_id"`
	AcademicYear season.AcademicYear `json:"academic_year"`
	Records      []Record            `json:"records"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Validate checks every record and the uniqueness invariant.
func (g *Register) Validate() error {
	if strings.TrimSpace(g.ClubID) == "" {
		return ErrEmptyClubID
	}
	seen := make(map[[2]string]bool, len(g.Records))
	for i := range g.Records {
		if err := g.Records[i].Validate(); err != nil {
			return err
		}
		key := [2]string{g.Records[i].AthleteID, g.Records[i].Date}
		if seen[key] {
			return fmt.Errorf("%w: %s on %s", ErrDuplicate, key[0], key[1])
		}
		seen[key] = true
	}
	return nil
}

// Toggle flips the absence flag of (athleteID, date), creating an absent
// record when none exists. Records are never deleted.
// POST: Returns a new slice; the input is not modified
func Toggle(records []Record, athleteID, date string) []Record {
	out := make([]Record, len(records), len(records)+1)
	copy(out, records)
	for i := range out {
		if out[i].AthleteID == athleteID && out[i].Date == date {
			out[i].IsAbsent = !out[i].IsAbsent
			return out
		}
	}
	return append(out, Record{AthleteID: athleteID, Date: date, IsAbsent: true})
}

// MarkAllAbsent replaces every record of date for the given athletes with an
// absent record. Records of other dates or other athletes are kept in order.
func MarkAllAbsent(records []Record, date string, athleteIDs []string) []Record {
	listed := make(map[string]bool, len(athleteIDs))
	for _, id := range athleteIDs {
		listed[id] = true
	}
	out := make([]Record, 0, len(records)+len(athleteIDs))
	for _, r := range records {
		if r.Date == date && listed[r.AthleteID] {
			continue
		}
		out = append(out, r)
	}
	added := make(map[string]bool, len(athleteIDs))
	for _, id := range athleteIDs {
		if added[id] {
			continue
		}
		added[id] = true
		out = append(out, Record{AthleteID: id, Date: date, IsAbsent: true})
	}
	return out
}

// IsAbsent reports whether the athlete is marked absent on date.
func IsAbsent(records []Record, athleteID, date string) bool {
	for _, r := range records {
		if r.AthleteID == athleteID && r.Date == date {
			return r.IsAbsent
		}
	}
	return false
}

// Stats summarizes one athlete's attendance over a month.
type Stats struct {
	Absences       int `json:"absences"`
	TotalDays      int `json:"total_days"`
	AttendanceRate int `json:"attendance_rate"` // percent
}

// CountAbsences counts absent records of an athlete whose date starts with monthPrefix.
func CountAbsences(records []Record, athleteID, monthPrefix string) int {
	n := 0
	for _, r := range records {
		if r.AthleteID == athleteID && r.IsAbsent && strings.HasPrefix(r.Date, monthPrefix) {
			n++
		}
	}
	return n
}

// Rate returns the attendance percentage, 100 when there are no days.
// POST: 0 <= result <= 100
func Rate(absences, totalDays int) int {
	if totalDays <= 0 {
		return 100
	}
	rate := int(math.Round(float64(totalDays-absences) / float64(totalDays) * 100))
	return max(0, min(100, rate))
}

// ComputeStats returns an athlete's absences and attendance rate for a month.
// PRE: monthPrefix is "YYYY-MM"
// POST: AttendanceRate is within 0..100
func ComputeStats(athleteID, monthPrefix string, records []Record, totalDays int) Stats {
	totalDays = max(0, totalDays)
	absences := CountAbsences(records, athleteID, monthPrefix)
	return Stats{Absences: absences, TotalDays: totalDays, AttendanceRate: Rate(absences, totalDays)}
}

// Summary aggregates a month across several athletes.
type Summary struct {
	Athletes       int `json:"athletes"`
	TotalAbsences  int `json:"total_absences"`
	AverageRate    int `json:"average_rate"`
	PerfectRecords int `json:"perfect_records"`
}

// MonthSummary aggregates ComputeStats over the listed athletes.
func MonthSummary(records []Record, athleteIDs []string, monthPrefix string, totalDays int) Summary {
	s := Summary{Athletes: len(athleteIDs)}
	if len(athleteIDs) == 0 {
		s.AverageRate = 100
		return s
	}
	rateSum := 0
	for _, id := range athleteIDs {
		st := ComputeStats(id, monthPrefix, records, totalDays)
		s.TotalAbsences += st.Absences
		rateSum += st.AttendanceRate
		if st.Absences == 0 {
			s.PerfectRecords++
		}
	}
	s.AverageRate = int(math.Round(float64(rateSum) / float64(len(athleteIDs))))
	return s
}
