package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/absence"
	rosterDomain "clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
)

// RegisterStore defines the attendance register methods needed by absence orchestrators.
type RegisterStore interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Register, error)
	Save(ctx context.Context, reg domain.Register) error
}

// AthleteLister lists a club's athletes.
type AthleteLister interface {
	ListByClub(ctx context.Context, clubID string) ([]rosterDomain.Athlete, error)
}

// AbsenceDeps holds dependencies for the absence orchestrators.
type AbsenceDeps struct {
	RegisterStore RegisterStore
	AthleteStore  AthleteLister // used by mark-all when no athletes are listed
	Now           func() time.Time
}

// ToggleAbsenceInput identifies one (athlete, day) cell of the register.
type ToggleAbsenceInput struct {
	ClubID       string
	AcademicYear season.AcademicYear
	AthleteID    string
	Date         string // YYYY-MM-DD
}

// MarkAllAbsentInput marks a whole day absent.
type MarkAllAbsentInput struct {
	ClubID       string
	AcademicYear season.AcademicYear
	Date         string
	AthleteIDs   []string // empty means the club's whole roster
}

// ExecuteToggleAbsence flips one athlete's absence flag for a day.
// PRE: AthleteID is non-empty, Date is YYYY-MM-DD inside the academic year
// POST: The register holds exactly one record for (AthleteID, Date)
func ExecuteToggleAbsence(ctx context.Context, input ToggleAbsenceInput, deps AbsenceDeps) (domain.Register, error) {
	rec := domain.Record{AthleteID: input.AthleteID, Date: input.Date}
	if err := rec.Validate(); err != nil {
		return domain.Register{}, err
	}
	if err := domain.CheckInSeason(input.Date, input.AcademicYear); err != nil {
		return domain.Register{}, err
	}

	reg, err := loadRegister(ctx, deps.RegisterStore, input.ClubID, input.AcademicYear)
	if err != nil {
		return domain.Register{}, err
	}
	reg.Records = domain.Toggle(reg.Records, input.AthleteID, input.Date)

	if err := saveRegister(ctx, deps, &reg); err != nil {
		return domain.Register{}, err
	}
	slog.Info("absence_toggled", "club_id", input.ClubID, "athlete_id", input.AthleteID, "date", input.Date,
		"absent", domain.IsAbsent(reg.Records, input.AthleteID, input.Date))
	return reg, nil
}

// ExecuteMarkAllAbsent marks every listed athlete absent on a date, discarding prior state for that date.
// PRE: Date is YYYY-MM-DD inside the academic year
// POST: Each listed athlete has one absent record on Date
func ExecuteMarkAllAbsent(ctx context.Context, input MarkAllAbsentInput, deps AbsenceDeps) (domain.Register, error) {
	if err := domain.CheckInSeason(input.Date, input.AcademicYear); err != nil {
		return domain.Register{}, err
	}

	ids := input.AthleteIDs
	if len(ids) == 0 {
		if deps.AthleteStore == nil {
			return domain.Register{}, domain.ErrEmptyAthleteID
		}
		athletes, err := deps.AthleteStore.ListByClub(ctx, input.ClubID)
		if err != nil {
			return domain.Register{}, fmt.Errorf("list athletes: %w", err)
		}
		for _, a := range athletes {
			ids = append(ids, a.ID)
		}
	}

	reg, err := loadRegister(ctx, deps.RegisterStore, input.ClubID, input.AcademicYear)
	if err != nil {
		return domain.Register{}, err
	}
	reg.Records = domain.MarkAllAbsent(reg.Records, input.Date, ids)

	if err := saveRegister(ctx, deps, &reg); err != nil {
		return domain.Register{}, err
	}
	slog.Info("absence_marked_all", "club_id", input.ClubID, "date", input.Date, "athletes", len(ids))
	return reg, nil
}

func loadRegister(ctx context.Context, store RegisterStore, clubID string, year season.AcademicYear) (domain.Register, error) {
	if err := year.Validate(); err != nil {
		return domain.Register{}, err
	}
	reg, err := store.Get(ctx, clubID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Register{ClubID: clubID, AcademicYear: year}, nil
	}
	if err != nil {
		return domain.Register{}, fmt.Errorf("load register: %w", err)
	}
	return reg, nil
}

func saveRegister(ctx context.Context, deps AbsenceDeps, reg *domain.Register) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	reg.UpdatedAt = deps.Now()
	if err := deps.RegisterStore.Save(ctx, *reg); err != nil {
		return fmt.Errorf("save register: %w", err)
	}
	return nil
}
