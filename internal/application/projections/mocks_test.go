package projections

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
)

type mockPlanStore struct {
	plan *plan.Plan
	err  error
}

func (m *mockPlanStore) Get(_ context.Context, _ string, _ season.AcademicYear) (plan.Plan, error) {
	if m.err != nil {
		return plan.Plan{}, m.err
	}
	if m.plan == nil {
		return plan.Plan{}, fmt.Errorf("plan: %w", storage.ErrNotFound)
	}
	return m.plan.Clone(), nil
}

type mockEvaluationStore struct {
	sheet *evaluation.Sheet
}

func (m *mockEvaluationStore) Get(_ context.Context, _ string, _ season.AcademicYear) (evaluation.Sheet, error) {
	if m.sheet == nil {
		return evaluation.Sheet{}, fmt.Errorf("sheet: %w", storage.ErrNotFound)
	}
	return *m.sheet, nil
}

type mockRegisterStore struct {
	reg *absence.Register
	err error
}

func (m *mockRegisterStore) Get(_ context.Context, _ string, _ season.AcademicYear) (absence.Register, error) {
	if m.err != nil {
		return absence.Register{}, m.err
	}
	if m.reg == nil {
		return absence.Register{}, fmt.Errorf("register: %w", storage.ErrNotFound)
	}
	return *m.reg, nil
}

// mockAthleteStore is safe for the concurrent reads the dashboard makes.
type mockAthleteStore struct {
	mu       sync.Mutex
	athletes []roster.Athlete
}

func (m *mockAthleteStore) ListByClub(_ context.Context, clubID string) ([]roster.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []roster.Athlete
	for _, a := range m.athletes {
		if a.ClubID == clubID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAthleteStore) ListAll(_ context.Context) ([]roster.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]roster.Athlete(nil), m.athletes...), nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
