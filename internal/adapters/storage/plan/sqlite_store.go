package plan

import (
	"context"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

const table = "training_plan"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new plan store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the plan of a club for one academic year.
// PRE: clubID is non-empty
// POST: Returns the plan or an error wrapping storage.ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Plan, error) {
	var p domain.Plan
	if err := storage.LoadDocument(ctx, s.db, table, clubID, int(year), &p); err != nil {
		return domain.Plan{}, err
	}
	return p, nil
}

// Save replaces the stored plan document.
// PRE: p has been validated
// POST: The document is persisted; a zero UpdatedAt is stamped with the current time
func (s *SQLiteStore) Save(ctx context.Context, p domain.Plan) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	return storage.SaveDocument(ctx, s.db, table, p.ClubID, int(p.AcademicYear), p, p.UpdatedAt)
}
