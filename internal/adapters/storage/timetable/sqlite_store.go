package timetable

import (
	"context"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/timetable"
)

const (
	table = "timetable"
	// timetables are not season-scoped; they live under academic_year 0
	anyYear = 0
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new timetable store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the timetable of a club.
// PRE: clubID is non-empty
// POST: Returns the timetable or an error wrapping storage.ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, clubID string) (domain.Timetable, error) {
	var tt domain.Timetable
	if err := storage.LoadDocument(ctx, s.db, table, clubID, anyYear, &tt); err != nil {
		return domain.Timetable{}, err
	}
	return tt, nil
}

// Save replaces the stored timetable.
func (s *SQLiteStore) Save(ctx context.Context, tt domain.Timetable) error {
	if tt.UpdatedAt.IsZero() {
		tt.UpdatedAt = time.Now().UTC()
	}
	return storage.SaveDocument(ctx, s.db, table, tt.ClubID, anyYear, tt, tt.UpdatedAt)
}
