package projections

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/weightclass"
)

func TestQueryGetRoster(t *testing.T) {
	store := &mockAthleteStore{athletes: []roster.Athlete{
		{ID: "a1", ClubID: "c1", Name: "Yacine", DateOfBirth: date(2011, time.March, 14), Gender: weightclass.Male, Weight: 55},
		{ID: "a2", ClubID: "c1", Name: "Sans date", Gender: weightclass.Female},
	}}
	now := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	entries, err := QueryGetRoster(context.Background(), GetRosterQuery{ClubID: "c1", Lang: language.French}, GetRosterDeps{AthleteStore: store}, now)
	if err != nil {
		t.Fatalf("QueryGetRoster: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	a1 := entries[0]
	if a1.Age == nil || *a1.Age != 14 {
		t.Errorf("age = %v, want 14", a1.Age)
	}
	if a1.Category != category.Cadet || a1.CategoryName != "Cadets" {
		t.Errorf("category = %q (%q), want cadet", a1.Category, a1.CategoryName)
	}
	if a1.SelectedWeightClass != "-55" {
		t.Errorf("selected = %q, want -55", a1.SelectedWeightClass)
	}
	if len(a1.WeightClasses) == 0 {
		t.Error("cadet male should have weight classes")
	}

	a2 := entries[1]
	if a2.Category != "" || a2.Age != nil {
		t.Errorf("athlete without birth date got category %q", a2.Category)
	}
	if a2.WeightClasses == nil || len(a2.WeightClasses) != 0 {
		t.Errorf("WeightClasses = %v, want empty non-nil", a2.WeightClasses)
	}
}

func TestQueryGetRoster_ArabicNames(t *testing.T) {
	store := &mockAthleteStore{athletes: []roster.Athlete{
		{ID: "a1", ClubID: "c1", Name: "x", DateOfBirth: date(2000, time.January, 1)},
	}}
	entries, err := QueryGetRoster(context.Background(), GetRosterQuery{ClubID: "c1", Lang: language.Arabic}, GetRosterDeps{AthleteStore: store},
		time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("QueryGetRoster: %v", err)
	}
	if entries[0].CategoryName != string(category.Senior) {
		t.Errorf("name = %q, want %q", entries[0].CategoryName, category.Senior)
	}
}

func TestQueryGetRoster_UsesCategoryIndex(t *testing.T) {
	store := &mockAthleteStore{athletes: []roster.Athlete{
		{ID: "a1", ClubID: "c1", Name: "Yacine", DateOfBirth: date(2011, time.March, 14)},
	}}
	// Indexed before the birthday: 13 years old, minime.
	idx := NewCategoryIndex(store, func() time.Time { return time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC) })
	if err := idx.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	query := GetRosterQuery{ClubID: "c1", Lang: language.French}

	entries, err := QueryGetRoster(context.Background(), query, GetRosterDeps{AthleteStore: store, CategoryIndex: idx}, now)
	if err != nil {
		t.Fatalf("QueryGetRoster: %v", err)
	}
	if entries[0].Category != category.Minime || entries[0].CategoryName != "Minimes" {
		t.Errorf("category = %q (%q), want the indexed minime", entries[0].Category, entries[0].CategoryName)
	}

	entries, _ = QueryGetRoster(context.Background(), query, GetRosterDeps{AthleteStore: store}, now)
	if entries[0].Category != category.Cadet {
		t.Errorf("category without index = %q, want cadet", entries[0].Category)
	}
}

func TestFilterRoster(t *testing.T) {
	age := func(n int) *int { return &n }
	entries := []RosterEntry{
		{ID: "a1", Name: "Yacine", Age: age(14), Category: category.Cadet, CategoryName: "Cadets", Gender: weightclass.Male, Weight: 55},
		{ID: "a2", Name: "Amina", Age: age(12), Category: category.Minime, CategoryName: "Minimes", Gender: weightclass.Female, Weight: 40},
		{ID: "a3", Name: "Sans date", Gender: weightclass.Female},
		{ID: "a4", Name: "Yasmine", Age: age(15), Category: category.Cadet, CategoryName: "Cadets", Gender: weightclass.Female, Weight: 48},
	}
	ids := func(es []RosterEntry) string {
		var out []string
		for _, e := range es {
			out = append(out, e.ID)
		}
		return strings.Join(out, ",")
	}

	tests := []struct {
		name   string
		params listutil.Params
		want   string
	}{
		{"no params keeps order", listutil.Params{}, "a1,a2,a3,a4"},
		{"search", listutil.Params{Search: "ya"}, "a1,a4"},
		{"category by label", listutil.Params{Filters: map[string]string{"category": string(category.Cadet)}}, "a1,a4"},
		{"category by display name", listutil.Params{Filters: map[string]string{"category": "Minimes"}}, "a2"},
		{"gender", listutil.Params{Filters: map[string]string{"gender": "female"}}, "a2,a3,a4"},
		{"age ascending, unknown last", listutil.Params{Sort: "age"}, "a2,a1,a4,a3"},
		{"name descending", listutil.Params{Sort: "name", Desc: true}, "a4,a1,a3,a2"},
		{"weight", listutil.Params{Sort: "weight"}, "a3,a2,a4,a1"},
		{"category youngest first, unclassified last", listutil.Params{Sort: "category"}, "a2,a1,a4,a3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(FilterRoster(entries, tt.params)); got != tt.want {
				t.Errorf("FilterRoster = %s, want %s", got, tt.want)
			}
		})
	}
	if entries[0].ID != "a1" {
		t.Error("FilterRoster reordered its input")
	}
}
