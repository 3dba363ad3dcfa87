package projections

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/language"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/weightclass"
)

// GetRosterQuery carries input for the roster projection.
type GetRosterQuery struct {
	ClubID string
	Lang   language.Tag
}

// GetRosterDeps holds dependencies for the roster projection.
type GetRosterDeps struct {
	AthleteStore  AthleteReader
	CategoryIndex *CategoryIndex // optional: indexed athletes show the category of the last refresh
}

// RosterEntry is one athlete as the roster form shows it.
type RosterEntry struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	DateOfBirth         string             `json:"date_of_birth,omitempty"`
	Gender              weightclass.Gender `json:"gender"`
	Weight              float64            `json:"weight"`
	Age                 *int               `json:"age,omitempty"`
	Category            category.Label     `json:"category,omitempty"`
	CategoryName        string             `json:"category_name,omitempty"`
	WeightClasses       []string           `json:"weight_classes"`
	SelectedWeightClass string             `json:"selected_weight_class,omitempty"`
}

// QueryGetRoster lists a club's athletes with their category and weight-class options on now.
// PRE: query.ClubID is non-empty
// POST: WeightClasses is never nil; an empty list means free numeric entry
func QueryGetRoster(ctx context.Context, query GetRosterQuery, deps GetRosterDeps, now time.Time) ([]RosterEntry, error) {
	athletes, err := deps.AthleteStore.ListByClub(ctx, query.ClubID)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}

	entries := make([]RosterEntry, 0, len(athletes))
	for _, a := range athletes {
		e := RosterEntry{
			ID:            a.ID,
			Name:          a.Name,
			Gender:        a.Gender,
			Weight:        a.Weight,
			WeightClasses: a.WeightClasses(now),
		}
		if a.DateOfBirth != nil && !a.DateOfBirth.IsZero() {
			e.DateOfBirth = a.DateOfBirth.Format("2006-01-02")
			age := category.AgeOn(*a.DateOfBirth, now)
			e.Age = &age
		}
		label, ok := a.Category(now)
		if deps.CategoryIndex != nil {
			if indexed, found := deps.CategoryIndex.Label(a.ID); found {
				label, ok = indexed, true
			}
		}
		if ok {
			e.Category = label
			e.CategoryName = category.DisplayName(label, query.Lang)
		}
		if sel, ok := a.SelectedWeightClass(now); ok {
			e.SelectedWeightClass = sel
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Roster list columns and filters accepted by FilterRoster.
var (
	RosterSortColumns = []string{"name", "age", "weight", "category"}
	RosterFilterKeys  = []string{"category", "gender"}
)

// FilterRoster applies search, filters and sorting to roster entries.
// The category filter matches the stored label or its display name.
// POST: The input slice is not modified
func FilterRoster(entries []RosterEntry, p listutil.Params) []RosterEntry {
	out := make([]RosterEntry, 0, len(entries))
	for _, e := range entries {
		if !listutil.MatchesSearch(p.Search, e.Name) {
			continue
		}
		if c, ok := p.Filters["category"]; ok && string(e.Category) != c && e.CategoryName != c {
			continue
		}
		if g, ok := p.Filters["gender"]; ok && string(e.Gender) != g {
			continue
		}
		out = append(out, e)
	}

	var less func(a, b RosterEntry) int
	switch p.Sort {
	case "name":
		less = func(a, b RosterEntry) int { return cmp.Compare(a.Name, b.Name) }
	case "age":
		// unknown ages sort last
		less = func(a, b RosterEntry) int {
			switch {
			case a.Age == nil && b.Age == nil:
				return 0
			case a.Age == nil:
				return 1
			case b.Age == nil:
				return -1
			}
			return cmp.Compare(*a.Age, *b.Age)
		}
	case "weight":
		less = func(a, b RosterEntry) int { return cmp.Compare(a.Weight, b.Weight) }
	case "category":
		// youngest band first, unclassified last
		rank := func(e RosterEntry) int {
			if i := category.Index(e.Category); i >= 0 {
				return i
			}
			return len(category.Ordered)
		}
		less = func(a, b RosterEntry) int { return cmp.Compare(rank(a), rank(b)) }
	default:
		return out
	}
	slices.SortStableFunc(out, func(a, b RosterEntry) int {
		if p.Desc {
			return less(b, a)
		}
		return less(a, b)
	})
	return out
}
