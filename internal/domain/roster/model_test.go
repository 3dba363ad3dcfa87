package roster_test

import (
	"testing"
	"time"

	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/weightclass"
)

var asOf = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

func dob(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAthlete_Validate(t *testing.T) {
	tests := []struct {
		name    string
		athlete roster.Athlete
		wantErr error
	}{
		{"valid", roster.Athlete{ClubID: "c1", Name: "Amine", DateOfBirth: dob(2010, 1, 1)}, nil},
		{"no birth date is fine", roster.Athlete{ClubID: "c1", Name: "Amine"}, nil},
		{"empty club", roster.Athlete{Name: "Amine"}, roster.ErrEmptyClubID},
		{"empty name", roster.Athlete{ClubID: "c1", Name: "  "}, roster.ErrEmptyName},
		{"negative weight", roster.Athlete{ClubID: "c1", Name: "Amine", Weight: -1}, roster.ErrNegativeWeight},
		{"future birth", roster.Athlete{ClubID: "c1", Name: "Amine", DateOfBirth: dob(2030, 1, 1)}, roster.ErrFutureBirth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.athlete.Validate(asOf); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAthlete_CategoryAndClasses(t *testing.T) {
	a := roster.Athlete{ClubID: "c1", Name: "Sara", DateOfBirth: dob(1995, 4, 2), Gender: weightclass.Female, Weight: 57}
	cat, ok := a.Category(asOf)
	if !ok || cat != category.Senior {
		t.Fatalf("Category = (%q, %v), want senior", cat, ok)
	}
	if len(a.WeightClasses(asOf)) == 0 {
		t.Fatal("expected weight classes for a senior woman")
	}
	sel, ok := a.SelectedWeightClass(asOf)
	if !ok || sel != "-57" {
		t.Errorf("SelectedWeightClass = (%q, %v), want -57", sel, ok)
	}
}

func TestAthlete_NoCategory(t *testing.T) {
	a := roster.Athlete{ClubID: "c1", Name: "Unknown", Gender: weightclass.Male, Weight: 66}
	if _, ok := a.Category(asOf); ok {
		t.Error("expected no category without a birth date")
	}
	if got := a.WeightClasses(asOf); got == nil || len(got) != 0 {
		t.Errorf("WeightClasses = %#v, want empty non-nil", got)
	}
	if _, ok := a.SelectedWeightClass(asOf); ok {
		t.Error("expected no selected class")
	}
}

func TestAthlete_WithWeightClass(t *testing.T) {
	a := roster.Athlete{ClubID: "c1", Name: "Yacine", DateOfBirth: dob(2000, 1, 1), Gender: weightclass.Male}
	b := a.WithWeightClass("+100")
	if b.Weight != 100 {
		t.Errorf("weight = %v, want 100", b.Weight)
	}
	if a.Weight != 0 {
		t.Error("WithWeightClass mutated the receiver")
	}
	if c := b.WithWeightClass("open"); c.Weight != 100 {
		t.Errorf("label without digits changed weight to %v", c.Weight)
	}
	// -100 and +100 share a boundary; the first class in table order is pre-selected.
	if sel, _ := b.SelectedWeightClass(asOf); sel != "-100" {
		t.Errorf("selected = %q, want -100", sel)
	}
}
