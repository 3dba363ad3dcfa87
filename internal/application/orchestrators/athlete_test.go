package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubdesk/internal/adapters/storage"
	rosterDomain "clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/weightclass"
)

func TestExecuteSaveAthlete(t *testing.T) {
	store := &mockAthleteStore{}
	deps := SaveAthleteDeps{AthleteStore: store, GenerateID: sequentialIDs("ath"), Now: testNow}
	dob := time.Date(2011, 3, 14, 0, 0, 0, 0, time.UTC)

	a, err := ExecuteSaveAthlete(context.Background(), SaveAthleteInput{
		ClubID:      "c1",
		Name:        "Yacine",
		DateOfBirth: &dob,
		Gender:      "m",
		Weight:      50,
		WeightClass: "-55",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteSaveAthlete: %v", err)
	}
	if a.ID != "ath-1" {
		t.Errorf("ID = %q, want ath-1", a.ID)
	}
	if a.Gender != weightclass.Male {
		t.Errorf("Gender = %q, want male", a.Gender)
	}
	if a.Weight != 55 {
		t.Errorf("Weight = %v, want 55 from class label", a.Weight)
	}
	if len(store.athletes) != 1 {
		t.Fatalf("stored = %d, want 1", len(store.athletes))
	}

	a.Name = "Yacine B."
	again, err := ExecuteSaveAthlete(context.Background(), SaveAthleteInput{ID: a.ID, ClubID: "c1", Name: a.Name}, deps)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if again.ID != "ath-1" || len(store.athletes) != 1 {
		t.Errorf("update should keep the ID and not duplicate, got %q / %d", again.ID, len(store.athletes))
	}
}

func TestExecuteSaveAthlete_Validation(t *testing.T) {
	future := fixedNow.AddDate(1, 0, 0)
	tests := []struct {
		name    string
		input   SaveAthleteInput
		wantErr error
	}{
		{"no name", SaveAthleteInput{ClubID: "c1"}, rosterDomain.ErrEmptyName},
		{"no club", SaveAthleteInput{Name: "x"}, rosterDomain.ErrEmptyClubID},
		{"negative weight", SaveAthleteInput{ClubID: "c1", Name: "x", Weight: -3}, rosterDomain.ErrNegativeWeight},
		{"future birth", SaveAthleteInput{ClubID: "c1", Name: "x", DateOfBirth: &future}, rosterDomain.ErrFutureBirth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAthleteStore{}
			_, err := ExecuteSaveAthlete(context.Background(), tt.input, SaveAthleteDeps{AthleteStore: store, GenerateID: sequentialIDs("a"), Now: testNow})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(store.athletes) != 0 {
				t.Error("invalid athlete was stored")
			}
		})
	}
}

func TestExecuteDeleteAthlete(t *testing.T) {
	store := &mockAthleteStore{athletes: []rosterDomain.Athlete{
		{ID: "a1", ClubID: "c1", Name: "Amina"},
		{ID: "a2", ClubID: "c2", Name: "Other club"},
	}}
	deps := DeleteAthleteDeps{AthleteStore: store}
	ctx := context.Background()

	if err := ExecuteDeleteAthlete(ctx, DeleteAthleteInput{ClubID: "c1", AthleteID: "a2"}, deps); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("other club: err = %v, want ErrNotFound", err)
	}
	if err := ExecuteDeleteAthlete(ctx, DeleteAthleteInput{ClubID: "c1", AthleteID: "missing"}, deps); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing: err = %v, want ErrNotFound", err)
	}
	if err := ExecuteDeleteAthlete(ctx, DeleteAthleteInput{ClubID: "c1", AthleteID: "a1"}, deps); err != nil {
		t.Fatalf("ExecuteDeleteAthlete: %v", err)
	}
	if len(store.athletes) != 1 || store.athletes[0].ID != "a2" {
		t.Errorf("athletes = %+v, want only a2", store.athletes)
	}
}
