package roster

import (
	"context"

	domain "clubdesk/internal/domain/roster"
)

// Store persists athlete profiles.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Athlete, error)
	Save(ctx context.Context, value domain.Athlete) error
	Delete(ctx context.Context, id string) error
	ListByClub(ctx context.Context, clubID string) ([]domain.Athlete, error)
	ListAll(ctx context.Context) ([]domain.Athlete, error)
}
