package absence

import (
	"context"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/season"
)

const table = "attendance_register"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new attendance register store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the attendance register of a club for one academic year.
// PRE: clubID is non-empty
// POST: Returns the register or an error wrapping storage.ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Register, error) {
	var reg domain.Register
	if err := storage.LoadDocument(ctx, s.db, table, clubID, int(year), &reg); err != nil {
		return domain.Register{}, err
	}
	return reg, nil
}

// Save replaces the stored register.
func (s *SQLiteStore) Save(ctx context.Context, reg domain.Register) error {
	if reg.UpdatedAt.IsZero() {
		reg.UpdatedAt = time.Now().UTC()
	}
	return storage.SaveDocument(ctx, s.db, table, reg.ClubID, int(reg.AcademicYear), reg, reg.UpdatedAt)
}
