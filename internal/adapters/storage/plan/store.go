package plan

import (
	"context"

	domain "clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// Store persists training plan documents, one per club and academic year.
type Store interface {
	// Get returns storage.ErrNotFound (wrapped) when the club has no plan for the year.
	Get(ctx context.Context, clubID string, year season.AcademicYear) (domain.Plan, error)
	Save(ctx context.Context, value domain.Plan) error
}
