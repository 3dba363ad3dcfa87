package timetable

import (
	"context"

	domain "clubdesk/internal/domain/timetable"
)

// Store persists weekly timetables. A club has one timetable regardless of season.
type Store interface {
	Get(ctx context.Context, clubID string) (domain.Timetable, error)
	Save(ctx context.Context, value domain.Timetable) error
}
