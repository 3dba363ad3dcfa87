package plan

import (
	"math"

	"clubdesk/internal/domain/season"
)

// MaxAssignable returns the most sessions the given week can hold without the
// month exceeding its authoritative executed-session figure.
// POST: result >= 0
func MaxAssignable(m MonthPlan, weekIndex int) int {
	others := 0
	for _, w := range m.Weeks {
		if w.Index != weekIndex {
			others += w.SessionsPlanned
		}
	}
	return max(0, m.Authoritative()-others)
}

// SetWeekSessions stores a requested session count for a week, clamped to
// [0, MaxAssignable]. Unknown weeks leave the month unchanged.
func SetWeekSessions(m MonthPlan, weekIndex, requested int) MonthPlan {
	out := m.Clone()
	pos := out.weekPos(weekIndex)
	if pos < 0 {
		return out
	}
	out.Weeks[pos].SessionsPlanned = max(0, min(requested, MaxAssignable(m, weekIndex)))
	return out
}

// Redistribute spreads total sessions over the weeks as evenly as possible.
// The first total%len(weeks) weeks receive one extra session.
// POST: sum of SessionsPlanned == total (for total >= 0 and at least one week);
// every other field is preserved
func Redistribute(weeks []WeekSlot, total int) []WeekSlot {
	out := make([]WeekSlot, len(weeks))
	copy(out, weeks)
	if len(out) == 0 {
		return out
	}
	total = max(0, total)
	base := total / len(out)
	remainder := total % len(out)
	for i := range out {
		out[i].SessionsPlanned = base
		if i < remainder {
			out[i].SessionsPlanned++
		}
	}
	return out
}

// Observation is the evaluation figure observed for one month.
type Observation struct {
	Planned  int
	Executed int
}

// Percentage returns round(executed/planned*100), or 0 when nothing was planned.
func Percentage(executed, planned int) int {
	if planned <= 0 {
		return 0
	}
	return int(math.Round(float64(executed) / float64(planned) * 100))
}

// Reconcile applies observed evaluation figures to the plan. Each month whose
// executed figure differs from its recorded Completed value is redistributed
// once; all other months are returned untouched.
// PRE: none; negative figures are treated as 0
// POST: Returns a new plan and the months that were redistributed, in plan order
func Reconcile(p Plan, observed map[season.MonthKey]Observation) (Plan, []season.MonthKey) {
	out := p.Clone()
	var changed []season.MonthKey
	for i, m := range out.Months {
		obs, ok := observed[m.Month]
		if !ok {
			continue
		}
		executed := max(0, obs.Executed)
		planned := max(0, obs.Planned)
		if executed == m.Completed {
			continue
		}
		m.Weeks = Redistribute(m.Weeks, executed)
		m.Completed = executed
		m.CompletedSessions = executed
		m.Total = planned
		m.NotCompleted = max(0, planned-executed)
		m.Percentage = Percentage(executed, planned)
		out.Months[i] = m
		changed = append(changed, m.Month)
	}
	return out, changed
}
