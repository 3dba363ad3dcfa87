package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// EditWeekInput carries one week edit command.
type EditWeekInput struct {
	ClubID       string
	AcademicYear season.AcademicYear
	Month        season.MonthKey
	WeekIndex    int
	Edit         domain.WeekEdit
}

// EditWeekDeps holds dependencies for ExecuteEditWeek.
type EditWeekDeps struct {
	PlanStore PlanStoreForSync
	Now       func() time.Time
}

// ExecuteEditWeek applies a week edit to the stored plan and saves it.
// PRE: input.Edit is non-nil
// POST: The returned plan is the one persisted; on failure nothing is written
func ExecuteEditWeek(ctx context.Context, input EditWeekInput, deps EditWeekDeps) (domain.Plan, error) {
	if err := input.AcademicYear.Validate(); err != nil {
		return domain.Plan{}, err
	}
	month, err := season.ParseMonthKey(string(input.Month))
	if err != nil {
		return domain.Plan{}, err
	}

	p, _, err := loadPlanOrDefault(ctx, deps.PlanStore, input.ClubID, input.AcademicYear)
	if err != nil {
		return domain.Plan{}, err
	}

	m, ok := p.Month(month.Key)
	if !ok {
		return domain.Plan{}, fmt.Errorf("%w: %s", domain.ErrMonthNotFound, month.Key)
	}
	edited, err := domain.ApplyEdit(m, input.WeekIndex, input.Edit)
	if err != nil {
		return domain.Plan{}, err
	}
	next, err := p.WithMonth(edited)
	if err != nil {
		return domain.Plan{}, err
	}

	next.UpdatedAt = deps.Now()
	if err := deps.PlanStore.Save(ctx, next); err != nil {
		return domain.Plan{}, fmt.Errorf("save plan: %w", err)
	}

	slog.Info("plan_week_edited", "club_id", input.ClubID, "month", month.Key, "week", input.WeekIndex, "edit", fmt.Sprintf("%T", input.Edit))
	return next, nil
}
