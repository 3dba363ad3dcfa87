package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	evalDomain "clubdesk/internal/domain/evaluation"
	domain "clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// PlanStoreForSync defines the plan store methods needed by plan orchestrators.
type PlanStoreForSync interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Plan, error)
	Save(ctx context.Context, p domain.Plan) error
}

// EvaluationStoreForSync defines the evaluation store methods needed to sync a plan.
type EvaluationStoreForSync interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (evalDomain.Sheet, error)
}

// SyncPlanInput carries input for the sync orchestrator.
type SyncPlanInput struct {
	ClubID       string
	AcademicYear season.AcademicYear
}

// SyncPlanDeps holds dependencies for ExecuteSyncPlan.
type SyncPlanDeps struct {
	PlanStore       PlanStoreForSync
	EvaluationStore EvaluationStoreForSync
	Now             func() time.Time
}

// SyncPlanResult is the reconciled plan and the months that changed.
type SyncPlanResult struct {
	Plan    domain.Plan
	Changed []season.MonthKey
	Created bool // true when the plan was initialised from defaults
}

// ExecuteSyncPlan reconciles a club's plan against its evaluation sheet.
// PRE: input.ClubID is non-empty, input.AcademicYear is valid
// POST: The plan is saved when it was created or any month changed; otherwise nothing is written.
// A load failure other than storage.ErrNotFound aborts without substituting defaults.
func ExecuteSyncPlan(ctx context.Context, input SyncPlanInput, deps SyncPlanDeps) (SyncPlanResult, error) {
	if err := input.AcademicYear.Validate(); err != nil {
		return SyncPlanResult{}, err
	}

	p, created, err := loadPlanOrDefault(ctx, deps.PlanStore, input.ClubID, input.AcademicYear)
	if err != nil {
		return SyncPlanResult{}, err
	}

	sheet, err := deps.EvaluationStore.Get(ctx, input.ClubID, input.AcademicYear)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sheet = evalDomain.NewSheet(input.ClubID, input.AcademicYear)
	case err != nil:
		return SyncPlanResult{}, fmt.Errorf("load evaluation: %w", err)
	}

	reconciled, changed := domain.Reconcile(p, sheet.Observations())
	if !created && len(changed) == 0 {
		return SyncPlanResult{Plan: p}, nil
	}

	reconciled.UpdatedAt = deps.Now()
	if err := deps.PlanStore.Save(ctx, reconciled); err != nil {
		return SyncPlanResult{}, fmt.Errorf("save plan: %w", err)
	}

	slog.Info("plan_reconciled", "club_id", input.ClubID, "academic_year", int(input.AcademicYear), "months", changed, "created", created)
	return SyncPlanResult{Plan: reconciled, Changed: changed, Created: created}, nil
}

// loadPlanOrDefault returns the stored plan, or the default plan when none exists.
func loadPlanOrDefault(ctx context.Context, store PlanStoreForSync, clubID string, year season.AcademicYear) (domain.Plan, bool, error) {
	p, err := store.Get(ctx, clubID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.NewDefault(clubID, year), true, nil
	}
	if err != nil {
		return domain.Plan{}, false, fmt.Errorf("load plan: %w", err)
	}
	return p, false, nil
}
