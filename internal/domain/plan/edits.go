package plan

import (
	"errors"
	"fmt"
)

// TestKind names one of the three per-week test flags.
type TestKind string

const (
	TestPhysical  TestKind = "physical"
	TestTechnical TestKind = "technical"
	TestTactical  TestKind = "tactical"
)

// ErrUnknownTest is returned for a test flag outside TestKind.
var ErrUnknownTest = errors.New("unknown test kind")

// WeekEdit is a single user edit to one week slot. The set of edits is closed.
type WeekEdit interface {
	weekEdit()
}

// SetSessions requests a session count; it is clamped by MaxAssignable.
type SetSessions struct{ Sessions int }

// SetHours sets the planned hours, floored at 0.
type SetHours struct{ Hours float64 }

// SetPhysical sets the physical share, clamped to 0..100.
type SetPhysical struct{ Percent int }

// SetTechnical sets the technical share, clamped to 0..100.
type SetTechnical struct{ Percent int }

// SetTactical sets the tactical share, clamped to 0..100.
type SetTactical struct{ Percent int }

// SetTestFlag toggles one of the week's test flags.
type SetTestFlag struct {
	Test  TestKind
	Value bool
}

func (SetSessions) weekEdit()  {}
func (SetHours) weekEdit()     {}
func (SetPhysical) weekEdit()  {}
func (SetTechnical) weekEdit() {}
func (SetTactical) weekEdit()  {}
func (SetTestFlag) weekEdit()  {}

// ApplyEdit applies an edit to one week and returns the new month.
// PRE: weekIndex names a week of m
// POST: Only the targeted week changes; bounds are clamped silently
func ApplyEdit(m MonthPlan, weekIndex int, edit WeekEdit) (MonthPlan, error) {
	pos := m.weekPos(weekIndex)
	if pos < 0 {
		return MonthPlan{}, fmt.Errorf("%w: %d", ErrWeekNotFound, weekIndex)
	}
	if e, ok := edit.(SetSessions); ok {
		return SetWeekSessions(m, weekIndex, e.Sessions), nil
	}

	out := m.Clone()
	w := &out.Weeks[pos]
	switch e := edit.(type) {
	case SetHours:
		w.HoursPlanned = max(0, e.Hours)
	case SetPhysical:
		w.Physical = clampPercent(e.Percent)
	case SetTechnical:
		w.Technical = clampPercent(e.Percent)
	case SetTactical:
		w.Tactical = clampPercent(e.Percent)
	case SetTestFlag:
		switch e.Test {
		case TestPhysical:
			w.TestPhysical = e.Value
		case TestTechnical:
			w.TestTechnical = e.Value
		case TestTactical:
			w.TestTactical = e.Value
		default:
			return MonthPlan{}, fmt.Errorf("%w: %q", ErrUnknownTest, e.Test)
		}
	default:
		return MonthPlan{}, fmt.Errorf("unsupported week edit %T", edit)
	}
	return out, nil
}

func clampPercent(p int) int {
	return max(0, min(100, p))
}
