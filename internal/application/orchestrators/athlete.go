package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/weightclass"
)

// AthleteStoreForSave defines the roster store methods needed to save an athlete.
type AthleteStoreForSave interface {
	Save(ctx context.Context, a domain.Athlete) error
}

// SaveAthleteInput carries an athlete profile from the roster form.
type SaveAthleteInput struct {
	ID          string // empty creates a new athlete
	ClubID      string
	Name        string
	DateOfBirth *time.Time
	Gender      string
	Weight      float64
	WeightClass string // a selected class label overrides Weight
}

// SaveAthleteDeps holds dependencies for ExecuteSaveAthlete.
type SaveAthleteDeps struct {
	AthleteStore AthleteStoreForSave
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSaveAthlete validates and persists an athlete profile.
// PRE: input.ClubID and input.Name are non-empty
// POST: The athlete is stored; a new ID is generated when none is given
func ExecuteSaveAthlete(ctx context.Context, input SaveAthleteInput, deps SaveAthleteDeps) (domain.Athlete, error) {
	a := domain.Athlete{
		ID:          input.ID,
		ClubID:      input.ClubID,
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		Gender:      weightclass.ParseGender(input.Gender),
		Weight:      input.Weight,
	}
	if a.ID == "" {
		a.ID = deps.GenerateID()
	}
	if input.WeightClass != "" {
		a = a.WithWeightClass(input.WeightClass)
	}

	if err := a.Validate(deps.Now()); err != nil {
		return domain.Athlete{}, err
	}
	if err := deps.AthleteStore.Save(ctx, a); err != nil {
		return domain.Athlete{}, fmt.Errorf("save athlete: %w", err)
	}

	cat, _ := a.Category(deps.Now())
	slog.Info("athlete_saved", "athlete_id", a.ID, "club_id", a.ClubID, "category", string(cat))
	return a, nil
}

// AthleteStoreForDelete defines the roster store methods needed to remove an athlete.
type AthleteStoreForDelete interface {
	GetByID(ctx context.Context, id string) (domain.Athlete, error)
	Delete(ctx context.Context, id string) error
}

// DeleteAthleteInput identifies the athlete to remove from a club's roster.
type DeleteAthleteInput struct {
	ClubID    string
	AthleteID string
}

// DeleteAthleteDeps holds dependencies for ExecuteDeleteAthlete.
type DeleteAthleteDeps struct {
	AthleteStore AthleteStoreForDelete
}

// ExecuteDeleteAthlete removes an athlete from the roster.
// Attendance records of the athlete are kept in the register.
// PRE: none
// POST: Returns an error wrapping storage.ErrNotFound when the athlete is not on the club's roster
func ExecuteDeleteAthlete(ctx context.Context, input DeleteAthleteInput, deps DeleteAthleteDeps) error {
	a, err := deps.AthleteStore.GetByID(ctx, input.AthleteID)
	if err != nil {
		return err
	}
	if a.ClubID != input.ClubID {
		return fmt.Errorf("athlete %s in club %s: %w", input.AthleteID, input.ClubID, storage.ErrNotFound)
	}
	if err := deps.AthleteStore.Delete(ctx, a.ID); err != nil {
		return fmt.Errorf("delete athlete: %w", err)
	}

	slog.Info("athlete_deleted", "athlete_id", a.ID, "club_id", a.ClubID)
	return nil
}
