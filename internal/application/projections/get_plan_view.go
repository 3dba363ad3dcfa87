package projections

import (
	"context"
	"errors"
	"fmt"

	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// PlanViewStore defines the plan store methods needed by the plan view.
type PlanViewStore interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (plan.Plan, error)
}

// GetPlanViewQuery carries input for the plan view projection.
type GetPlanViewQuery struct {
	ClubID       string
	AcademicYear season.AcademicYear
}

// GetPlanViewDeps holds dependencies for the plan view projection.
type GetPlanViewDeps struct {
	PlanStore PlanViewStore
}

// WeekView is a week slot with the session cap the editor must respect.
type WeekView struct {
	plan.WeekSlot
	MaxSessions int `json:"max_sessions"`
}

// MonthView is one month of the plan as the editor shows it.
type MonthView struct {
	Month             season.MonthKey `json:"month"`
	CalendarYear      int             `json:"calendar_year"`
	Weeks             []WeekView      `json:"weeks"`
	PlannedSessions   int             `json:"planned_sessions"`
	CompletedSessions int             `json:"completed_sessions"`
	NotCompleted      int             `json:"not_completed"`
	Percentage        int             `json:"percentage"`
	Total             int             `json:"total"`
	Consistent        bool            `json:"consistent"`
}

// PlanView is the full annual plan with per-week caps.
type PlanView struct {
	ClubID       string              `json:"club_id"`
	AcademicYear season.AcademicYear `json:"academic_year"`
	Months       []MonthView         `json:"months"`
	Stored       bool                `json:"stored"` // false when showing unsaved defaults
}

// BuildPlanView computes caps for every week of a plan.
// Caps are recomputed on every call and never cached.
func BuildPlanView(p plan.Plan) PlanView {
	view := PlanView{ClubID: p.ClubID, AcademicYear: p.AcademicYear, Stored: !p.UpdatedAt.IsZero()}
	for _, m := range p.Months {
		mv := MonthView{
			Month:             m.Month,
			PlannedSessions:   m.SessionsSum(),
			CompletedSessions: m.Authoritative(),
			NotCompleted:      m.NotCompleted,
			Percentage:        m.Percentage,
			Total:             m.Total,
			Consistent:        m.Consistent(),
		}
		if sm, err := season.ParseMonthKey(string(m.Month)); err == nil {
			mv.CalendarYear = p.AcademicYear.CalendarYear(sm.Number)
		}
		for _, w := range m.Weeks {
			mv.Weeks = append(mv.Weeks, WeekView{WeekSlot: w, MaxSessions: plan.MaxAssignable(m, w.Index)})
		}
		view.Months = append(view.Months, mv)
	}
	return view
}

// QueryGetPlanView loads a plan read-only. A missing plan is shown as defaults without being saved.
// PRE: query.ClubID is non-empty
// POST: Returns the view; load failures other than not-found are returned as errors
func QueryGetPlanView(ctx context.Context, query GetPlanViewQuery, deps GetPlanViewDeps) (PlanView, error) {
	p, err := deps.PlanStore.Get(ctx, query.ClubID, query.AcademicYear)
	if errors.Is(err, storage.ErrNotFound) {
		p = plan.NewDefault(query.ClubID, query.AcademicYear)
	} else if err != nil {
		return PlanView{}, fmt.Errorf("load plan: %w", err)
	}
	return BuildPlanView(p), nil
}
