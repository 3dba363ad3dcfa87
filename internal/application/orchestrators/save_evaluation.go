package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/season"
)

// EvaluationStoreForSave defines the evaluation store methods needed to record a month.
type EvaluationStoreForSave interface {
	EvaluationStoreForSync
	Save(ctx context.Context, sheet domain.Sheet) error
}

// SaveEvaluationInput carries one month's evaluation figures.
type SaveEvaluationInput struct {
	ClubID       string
	AcademicYear season.AcademicYear
	Record       domain.Record
}

// SaveEvaluationDeps holds dependencies for ExecuteSaveEvaluation.
type SaveEvaluationDeps struct {
	EvaluationStore EvaluationStoreForSave
	PlanStore       PlanStoreForSync
	Now             func() time.Time
}

// SaveEvaluationResult is the stored sheet and the plan sync outcome.
type SaveEvaluationResult struct {
	Sheet domain.Sheet
	Sync  SyncPlanResult
}

// ExecuteSaveEvaluation records a month's evaluation and then reconciles the plan.
// PRE: input.Record.Month is a season month
// POST: The sheet is saved; the plan is reconciled against it
func ExecuteSaveEvaluation(ctx context.Context, input SaveEvaluationInput, deps SaveEvaluationDeps) (SaveEvaluationResult, error) {
	if err := input.AcademicYear.Validate(); err != nil {
		return SaveEvaluationResult{}, err
	}
	if _, err := season.ParseMonthKey(string(input.Record.Month)); err != nil {
		return SaveEvaluationResult{}, err
	}

	sheet, err := deps.EvaluationStore.Get(ctx, input.ClubID, input.AcademicYear)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sheet = domain.NewSheet(input.ClubID, input.AcademicYear)
	case err != nil:
		return SaveEvaluationResult{}, fmt.Errorf("load evaluation: %w", err)
	}

	sheet = sheet.WithRecord(input.Record)
	sheet.UpdatedAt = deps.Now()
	if err := sheet.Validate(); err != nil {
		return SaveEvaluationResult{}, err
	}
	if err := deps.EvaluationStore.Save(ctx, sheet); err != nil {
		return SaveEvaluationResult{}, fmt.Errorf("save evaluation: %w", err)
	}
	slog.Info("evaluation_saved", "club_id", input.ClubID, "month", input.Record.Month, "executed", input.Record.ExecutedSessions)

	sync, err := ExecuteSyncPlan(ctx, SyncPlanInput{ClubID: input.ClubID, AcademicYear: input.AcademicYear}, SyncPlanDeps{
		PlanStore:       deps.PlanStore,
		EvaluationStore: deps.EvaluationStore,
		Now:             deps.Now,
	})
	if err != nil {
		return SaveEvaluationResult{Sheet: sheet}, err
	}
	return SaveEvaluationResult{Sheet: sheet, Sync: sync}, nil
}
