package roster

import (
	"errors"
	"strings"
	"time"

	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/weightclass"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("athlete name cannot be empty")
	ErrEmptyClubID    = errors.New("athlete must belong to a club")
	ErrNegativeWeight = errors.New("weight cannot be negative")
	ErrFutureBirth    = errors.New("date of birth cannot be in the future")
)

// Athlete is the roster profile of one club member.
type Athlete struct {
	ID          string
	ClubID      string
	Name        string
	DateOfBirth *time.Time
	Gender      weightclass.Gender
	Weight      float64 // kg, 0 when unknown
}

// Validate checks the athlete against the roster rules.
// PRE: Athlete struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Athlete) Validate(now time.Time) error {
	if strings.TrimSpace(a.ClubID) == "" {
		return ErrEmptyClubID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if a.Weight < 0 {
		return ErrNegativeWeight
	}
	if a.DateOfBirth != nil && a.DateOfBirth.After(now) {
		return ErrFutureBirth
	}
	return nil
}

// Category returns the athlete's age category on asOf. It is never stored.
func (a Athlete) Category(asOf time.Time) (category.Label, bool) {
	return category.Classify(a.DateOfBirth, asOf)
}

// WeightClasses returns the classes the athlete may pick from on asOf.
// An empty result means free numeric entry.
func (a Athlete) WeightClasses(asOf time.Time) []string {
	cat, ok := a.Category(asOf)
	if !ok {
		return []string{}
	}
	return weightclass.Classes(cat, a.Gender)
}

// SelectedWeightClass returns the class matching the stored weight, if any.
func (a Athlete) SelectedWeightClass(asOf time.Time) (string, bool) {
	if a.Weight <= 0 {
		return "", false
	}
	return weightclass.MatchWeight(a.WeightClasses(asOf), a.Weight)
}

// WithWeightClass returns a copy of the athlete with the weight taken from a class label.
// Labels without digits leave the weight unchanged.
func (a Athlete) WithWeightClass(label string) Athlete {
	if w, ok := weightclass.SelectLabel(label); ok {
		a.Weight = w
	}
	return a
}
