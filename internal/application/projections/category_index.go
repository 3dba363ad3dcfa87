package projections

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/roster"
)

// AllAthletesReader lists athletes across every club.
type AllAthletesReader interface {
	ListAll(ctx context.Context) ([]roster.Athlete, error)
}

type indexEntry struct {
	clubID string
	label  category.Label
	ok     bool
}

// CategoryIndex caches every athlete's category for the current day.
// Refresh is called at start-up and by the midnight reclassifier.
type CategoryIndex struct {
	store AllAthletesReader
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]indexEntry
	asOf    time.Time
}

// NewCategoryIndex creates an empty index. Call Refresh before reading it.
func NewCategoryIndex(store AllAthletesReader, now func() time.Time) *CategoryIndex {
	return &CategoryIndex{store: store, now: now, entries: map[string]indexEntry{}}
}

// Refresh recomputes every athlete's category and logs the ones that changed.
// PRE: none
// POST: The index reflects the roster as of now(); on error the previous index is kept
func (c *CategoryIndex) Refresh(ctx context.Context) error {
	athletes, err := c.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list athletes: %w", err)
	}
	asOf := c.now()

	next := make(map[string]indexEntry, len(athletes))
	for _, a := range athletes {
		label, ok := a.Category(asOf)
		next[a.ID] = indexEntry{clubID: a.ClubID, label: label, ok: ok}
	}

	c.mu.Lock()
	prev := c.entries
	c.entries = next
	c.asOf = asOf
	c.mu.Unlock()

	changed := 0
	for id, e := range next {
		old, seen := prev[id]
		if seen && old.label != e.label {
			changed++
			slog.Info("athlete_category_changed", "athlete_id", id, "club_id", e.clubID, "from", string(old.label), "to", string(e.label))
		}
	}
	slog.Info("category_index_refreshed", "athletes", len(next), "changed", changed, "as_of", asOf.Format("2006-01-02"))
	return nil
}

// Label returns the cached category of an athlete.
// The second result is false when the athlete is unknown to the index or has no category.
func (c *CategoryIndex) Label(athleteID string) (category.Label, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[athleteID]
	return e.label, ok && e.ok
}

// Counts returns how many athletes of a club fall in each category.
func (c *CategoryIndex) Counts(clubID string) map[category.Label]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := map[category.Label]int{}
	for _, e := range c.entries {
		if e.clubID == clubID && e.ok {
			counts[e.label]++
		}
	}
	return counts
}

// AsOf returns the time of the last successful refresh.
func (c *CategoryIndex) AsOf() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.asOf
}
