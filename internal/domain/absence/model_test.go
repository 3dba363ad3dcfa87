package absence_test

import (
	"errors"
	"reflect"
	"testing"

	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/season"
)

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  absence.Record
		wantErr error
	}{
		{"valid", absence.Record{AthleteID: "a1", Date: "2025-10-03", IsAbsent: true}, nil},
		{"missing athlete", absence.Record{Date: "2025-10-03"}, absence.ErrEmptyAthleteID},
		{"bad date", absence.Record{AthleteID: "a1", Date: "03/10/2025"}, absence.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegister_ValidateDuplicates(t *testing.T) {
	g := absence.Register{ClubID: "c1", Records: []absence.Record{
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: true},
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: false},
	}}
	if err := g.Validate(); !errors.Is(err, absence.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestToggle(t *testing.T) {
	var records []absence.Record

	records = absence.Toggle(records, "a1", "2025-10-03")
	if len(records) != 1 || !records[0].IsAbsent {
		t.Fatalf("first toggle should create an absent record, got %+v", records)
	}

	flipped := absence.Toggle(records, "a1", "2025-10-03")
	if len(flipped) != 1 || flipped[0].IsAbsent {
		t.Fatalf("second toggle should flip to present and keep the record, got %+v", flipped)
	}
	if !records[0].IsAbsent {
		t.Error("Toggle mutated its input")
	}
}

// TestToggle_Involution checks toggling twice restores the original flag.
func TestToggle_Involution(t *testing.T) {
	start := []absence.Record{
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: true},
		{AthleteID: "a2", Date: "2025-10-03", IsAbsent: false},
	}
	for _, r := range start {
		twice := absence.Toggle(absence.Toggle(start, r.AthleteID, r.Date), r.AthleteID, r.Date)
		if !reflect.DeepEqual(twice, start) {
			t.Errorf("toggle twice on %s: %+v, want %+v", r.AthleteID, twice, start)
		}
	}
	// A missing record comes back as explicitly present.
	twice := absence.Toggle(absence.Toggle(start, "a3", "2025-10-04"), "a3", "2025-10-04")
	if absence.IsAbsent(twice, "a3", "2025-10-04") {
		t.Error("a3 should be present after two toggles")
	}
}

func TestMarkAllAbsent(t *testing.T) {
	records := []absence.Record{
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: false},
		{AthleteID: "a2", Date: "2025-10-04", IsAbsent: true},
		{AthleteID: "a3", Date: "2025-10-03", IsAbsent: false},
	}
	got := absence.MarkAllAbsent(records, "2025-10-03", []string{"a1", "a2", "a2"})

	for _, id := range []string{"a1", "a2"} {
		if !absence.IsAbsent(got, id, "2025-10-03") {
			t.Errorf("%s should be absent on 2025-10-03", id)
		}
	}
	if absence.IsAbsent(got, "a3", "2025-10-03") {
		t.Error("a3 was not listed and must keep its record")
	}
	if !absence.IsAbsent(got, "a2", "2025-10-04") {
		t.Error("other dates must be preserved")
	}
	g := absence.Register{ClubID: "c1", Records: got}
	if err := g.Validate(); err != nil {
		t.Errorf("result violates uniqueness: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestComputeStats(t *testing.T) {
	records := []absence.Record{
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: true},
		{AthleteID: "a1", Date: "2025-10-10", IsAbsent: true},
		{AthleteID: "a1", Date: "2025-10-17", IsAbsent: false},
		{AthleteID: "a1", Date: "2025-11-03", IsAbsent: true},
		{AthleteID: "a2", Date: "2025-10-03", IsAbsent: true},
	}
	tests := []struct {
		name      string
		athlete   string
		prefix    string
		totalDays int
		want      absence.Stats
	}{
		{"no records", "a9", "2025-09", 30, absence.Stats{Absences: 0, TotalDays: 30, AttendanceRate: 100}},
		{"two absences", "a1", "2025-10", 31, absence.Stats{Absences: 2, TotalDays: 31, AttendanceRate: 94}},
		{"zero days", "a1", "2025-10", 0, absence.Stats{Absences: 2, TotalDays: 0, AttendanceRate: 100}},
		{"more absences than days", "a1", "2025-10", 1, absence.Stats{Absences: 2, TotalDays: 1, AttendanceRate: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := absence.ComputeStats(tt.athlete, tt.prefix, records, tt.totalDays)
			if got != tt.want {
				t.Errorf("ComputeStats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRate_Bounds checks the rate stays within 0..100.
func TestRate_Bounds(t *testing.T) {
	for days := 0; days <= 31; days++ {
		for abs := 0; abs <= 40; abs++ {
			r := absence.Rate(abs, days)
			if r < 0 || r > 100 {
				t.Fatalf("Rate(%d, %d) = %d", abs, days, r)
			}
		}
	}
}

func TestMonthSummary(t *testing.T) {
	records := []absence.Record{
		{AthleteID: "a1", Date: "2025-10-03", IsAbsent: true},
		{AthleteID: "a1", Date: "2025-10-04", IsAbsent: true},
	}
	s := absence.MonthSummary(records, []string{"a1", "a2"}, "2025-10", 20)
	want := absence.Summary{Athletes: 2, TotalAbsences: 2, AverageRate: 95, PerfectRecords: 1}
	if s != want {
		t.Errorf("MonthSummary = %+v, want %+v", s, want)
	}
	if empty := absence.MonthSummary(records, nil, "2025-10", 20); empty.AverageRate != 100 {
		t.Errorf("empty roster average = %d, want 100", empty.AverageRate)
	}
}

func TestCheckInSeason(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"first day", "2025-09-01", nil},
		{"last day", "2026-06-30", nil},
		{"summer before", "2025-08-31", absence.ErrOutsideSeason},
		{"summer after", "2026-07-01", absence.ErrOutsideSeason},
		{"previous season", "2024-10-03", absence.ErrOutsideSeason},
		{"malformed", "2025/10/03", absence.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := absence.CheckInSeason(tt.date, season.AcademicYear(2025))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckInSeason(%q) = %v, want %v", tt.date, err, tt.wantErr)
			}
		})
	}
}
