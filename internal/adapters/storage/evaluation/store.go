package evaluation

import (
	"context"

	domain "clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/season"
)

// Store persists session evaluation sheets.
type Store interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Sheet, error)
	Save(ctx context.Context, value domain.Sheet) error
}
