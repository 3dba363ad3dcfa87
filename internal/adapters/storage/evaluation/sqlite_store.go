package evaluation

import (
	"context"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/season"
)

const table = "session_evaluation"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new evaluation store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the evaluation sheet of a club for one academic year.
// PRE: clubID is non-empty
// POST: Returns the sheet or an error wrapping storage.ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Sheet, error) {
	var sheet domain.Sheet
	if err := storage.LoadDocument(ctx, s.db, table, clubID, int(year), &sheet); err != nil {
		return domain.Sheet{}, err
	}
	return sheet, nil
}

// Save replaces the stored evaluation sheet.
func (s *SQLiteStore) Save(ctx context.Context, sheet domain.Sheet) error {
	if sheet.UpdatedAt.IsZero() {
		sheet.UpdatedAt = time.Now().UTC()
	}
	return storage.SaveDocument(ctx, s.db, table, sheet.ClubID, int(sheet.AcademicYear), sheet, sheet.UpdatedAt)
}
