package orchestrators

import (
	"context"
	"fmt"
	"slices"
	"time"

	"clubdesk/internal/adapters/storage"
	absenceDomain "clubdesk/internal/domain/absence"
	evalDomain "clubdesk/internal/domain/evaluation"
	planDomain "clubdesk/internal/domain/plan"
	rosterDomain "clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
	timetableDomain "clubdesk/internal/domain/timetable"
)

var fixedNow = time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

func testNow() time.Time { return fixedNow }

// mockPlanStore keeps plans in memory and counts saves.
type mockPlanStore struct {
	plans   map[string]planDomain.Plan
	saves   int
	getErr  error
	saveErr error
}

func newMockPlanStore() *mockPlanStore {
	return &mockPlanStore{plans: map[string]planDomain.Plan{}}
}

func docKey(clubID string, year season.AcademicYear) string {
	return fmt.Sprintf("%s/%d", clubID, year)
}

func (m *mockPlanStore) Get(_ context.Context, clubID string, year season.AcademicYear) (planDomain.Plan, error) {
	if m.getErr != nil {
		return planDomain.Plan{}, m.getErr
	}
	p, ok := m.plans[docKey(clubID, year)]
	if !ok {
		return planDomain.Plan{}, fmt.Errorf("plan: %w", storage.ErrNotFound)
	}
	return p.Clone(), nil
}

func (m *mockPlanStore) Save(_ context.Context, p planDomain.Plan) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.plans[docKey(p.ClubID, p.AcademicYear)] = p.Clone()
	return nil
}

// mockEvaluationStore keeps evaluation sheets in memory.
type mockEvaluationStore struct {
	sheets map[string]evalDomain.Sheet
	getErr error
}

func newMockEvaluationStore() *mockEvaluationStore {
	return &mockEvaluationStore{sheets: map[string]evalDomain.Sheet{}}
}

func (m *mockEvaluationStore) Get(_ context.Context, clubID string, year season.AcademicYear) (evalDomain.Sheet, error) {
	if m.getErr != nil {
		return evalDomain.Sheet{}, m.getErr
	}
	s, ok := m.sheets[docKey(clubID, year)]
	if !ok {
		return evalDomain.Sheet{}, fmt.Errorf("evaluation: %w", storage.ErrNotFound)
	}
	return s, nil
}

func (m *mockEvaluationStore) Save(_ context.Context, s evalDomain.Sheet) error {
	m.sheets[docKey(s.ClubID, s.AcademicYear)] = s
	return nil
}

// mockRegisterStore keeps attendance registers in memory.
type mockRegisterStore struct {
	regs  map[string]absenceDomain.Register
	saves int
}

func newMockRegisterStore() *mockRegisterStore {
	return &mockRegisterStore{regs: map[string]absenceDomain.Register{}}
}

func (m *mockRegisterStore) Get(_ context.Context, clubID string, year season.AcademicYear) (absenceDomain.Register, error) {
	r, ok := m.regs[docKey(clubID, year)]
	if !ok {
		return absenceDomain.Register{}, fmt.Errorf("register: %w", storage.ErrNotFound)
	}
	return r, nil
}

func (m *mockRegisterStore) Save(_ context.Context, r absenceDomain.Register) error {
	m.saves++
	m.regs[docKey(r.ClubID, r.AcademicYear)] = r
	return nil
}

// mockAthleteStore implements the roster store interfaces in memory.
type mockAthleteStore struct {
	athletes []rosterDomain.Athlete
}

func (m *mockAthleteStore) ListByClub(_ context.Context, clubID string) ([]rosterDomain.Athlete, error) {
	var out []rosterDomain.Athlete
	for _, a := range m.athletes {
		if a.ClubID == clubID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAthleteStore) Save(_ context.Context, a rosterDomain.Athlete) error {
	for i := range m.athletes {
		if m.athletes[i].ID == a.ID {
			m.athletes[i] = a
			return nil
		}
	}
	m.athletes = append(m.athletes, a)
	return nil
}

func (m *mockAthleteStore) GetByID(_ context.Context, id string) (rosterDomain.Athlete, error) {
	for _, a := range m.athletes {
		if a.ID == id {
			return a, nil
		}
	}
	return rosterDomain.Athlete{}, fmt.Errorf("athlete %s: %w", id, storage.ErrNotFound)
}

func (m *mockAthleteStore) Delete(_ context.Context, id string) error {
	m.athletes = slices.DeleteFunc(m.athletes, func(a rosterDomain.Athlete) bool { return a.ID == id })
	return nil
}

// mockTimetableStore records the last saved timetable.
type mockTimetableStore struct {
	saved *timetableDomain.Timetable
}

func (m *mockTimetableStore) Save(_ context.Context, tt timetableDomain.Timetable) error {
	m.saved = &tt
	return nil
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
