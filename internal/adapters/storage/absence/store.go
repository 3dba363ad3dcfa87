package absence

import (
	"context"

	domain "clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/season"
)

// Store persists attendance registers.
type Store interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Register, error)
	Save(ctx context.Context, value domain.Register) error
}
