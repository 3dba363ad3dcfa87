package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/weightclass"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new athlete store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an athlete by ID.
// PRE: id is non-empty
// POST: Returns the athlete or an error wrapping storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Athlete, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, club_id, name, date_of_birth, gender, weight FROM athlete WHERE id = ?", id)
	a, err := scanAthlete(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Athlete{}, fmt.Errorf("athlete %s: %w", id, storage.ErrNotFound)
	}
	return a, err
}

// Save persists an athlete (insert or update).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, a domain.Athlete) error {
	var dob sql.NullString
	if a.DateOfBirth != nil && !a.DateOfBirth.IsZero() {
		dob = sql.NullString{String: a.DateOfBirth.Format(dateLayout), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO athlete (id, club_id, name, date_of_birth, gender, weight) VALUES (?, ?, ?, ?, ?, ?) "+
			"ON CONFLICT(id) DO UPDATE SET club_id=excluded.club_id, name=excluded.name, date_of_birth=excluded.date_of_birth, gender=excluded.gender, weight=excluded.weight",
		a.ID, a.ClubID, a.Name, dob, string(a.Gender), a.Weight,
	)
	return err
}

// Delete removes an athlete.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM athlete WHERE id = ?", id)
	return err
}

// ListByClub returns the athletes of a club ordered by name.
func (s *SQLiteStore) ListByClub(ctx context.Context, clubID string) ([]domain.Athlete, error) {
	return s.queryAthletes(ctx, "SELECT id, club_id, name, date_of_birth, gender, weight FROM athlete WHERE club_id = ? ORDER BY name", clubID)
}

// ListAll returns every athlete across clubs.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Athlete, error) {
	return s.queryAthletes(ctx, "SELECT id, club_id, name, date_of_birth, gender, weight FROM athlete ORDER BY club_id, name")
}

func (s *SQLiteStore) queryAthletes(ctx context.Context, query string, args ...any) ([]domain.Athlete, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAthlete(row scanner) (domain.Athlete, error) {
	var (
		a      domain.Athlete
		dob    sql.NullString
		gender string
	)
	if err := row.Scan(&a.ID, &a.ClubID, &a.Name, &dob, &gender, &a.Weight); err != nil {
		return domain.Athlete{}, err
	}
	a.Gender = weightclass.Gender(gender)
	if dob.Valid && dob.String != "" {
		t, err := time.Parse(dateLayout, dob.String)
		if err != nil {
			return domain.Athlete{}, fmt.Errorf("athlete %s: bad date_of_birth %q: %w", a.ID, dob.String, err)
		}
		a.DateOfBirth = &t
	}
	return a, nil
}
