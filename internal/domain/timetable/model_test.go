package timetable_test

import (
	"errors"
	"testing"

	"clubdesk/internal/domain/timetable"
)

func TestRow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		row     timetable.Row
		wantErr error
	}{
		{"valid", timetable.Row{Group: "أكابر", Day: timetable.Monday, StartTime: "18:00", EndTime: "19:30"}, nil},
		{"empty group", timetable.Row{Day: timetable.Monday, StartTime: "18:00", EndTime: "19:30"}, timetable.ErrEmptyGroup},
		{"bad day", timetable.Row{Group: "g", Day: "funday", StartTime: "18:00", EndTime: "19:30"}, timetable.ErrInvalidDay},
		{"no start", timetable.Row{Group: "g", Day: timetable.Friday, EndTime: "19:30"}, timetable.ErrEmptyStartTime},
		{"no end", timetable.Row{Group: "g", Day: timetable.Friday, StartTime: "18:00"}, timetable.ErrEmptyEndTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.row.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	bad := timetable.Row{Group: "g", Day: timetable.Friday, StartTime: "6pm", EndTime: "19:30"}
	if err := bad.Validate(); err == nil {
		t.Error("expected parse error for 6pm")
	}
}

func TestTimetable_DurationHours(t *testing.T) {
	tt := timetable.Timetable{ClubID: "c1", Rows: []timetable.Row{
		{ID: "r1", Group: "أكابر", Day: timetable.Monday, StartTime: "18:00", EndTime: "19:30"},
		{ID: "r2", Group: "أكابر", Day: timetable.Wednesday, StartTime: "23:00", EndTime: "00:30"},
		{ID: "r3", Group: "براعم", Day: timetable.Saturday, StartTime: "10:00", EndTime: "11:00"},
	}}

	h, err := tt.DurationHours("r1")
	if err != nil || h != 1.5 {
		t.Errorf("r1 = (%v, %v), want 1.5", h, err)
	}
	h, err = tt.DurationHours("r2")
	if err != nil || h != 1.5 {
		t.Errorf("overnight r2 = (%v, %v), want 1.5", h, err)
	}
	if _, err := tt.DurationHours("missing"); !errors.Is(err, timetable.ErrRowNotFound) {
		t.Errorf("err = %v, want ErrRowNotFound", err)
	}
	if got := tt.WeeklyHours("أكابر"); got != 3 {
		t.Errorf("WeeklyHours = %v, want 3", got)
	}
}

func TestTimetable_Sorted(t *testing.T) {
	tt := timetable.Timetable{ClubID: "c1", Rows: []timetable.Row{
		{ID: "a", Day: timetable.Monday, StartTime: "18:00"},
		{ID: "b", Day: timetable.Saturday, StartTime: "10:00"},
		{ID: "c", Day: timetable.Monday, StartTime: "09:00"},
	}}
	got := tt.Sorted()
	if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
		t.Errorf("order = %s,%s,%s; want b,c,a", got[0].ID, got[1].ID, got[2].ID)
	}
	if tt.Rows[0].ID != "a" {
		t.Error("Sorted mutated the timetable")
	}
}

func TestTimetable_Validate(t *testing.T) {
	tt := timetable.Timetable{ClubID: "c1", Rows: []timetable.Row{{Group: "g", Day: "x", StartTime: "1", EndTime: "2"}}}
	if err := tt.Validate(); !errors.Is(err, timetable.ErrInvalidDay) {
		t.Errorf("err = %v, want ErrInvalidDay", err)
	}
	empty := timetable.Timetable{}
	if err := empty.Validate(); !errors.Is(err, timetable.ErrEmptyClubID) {
		t.Errorf("err = %v, want ErrEmptyClubID", err)
	}
}
