package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "clubdesk/internal/domain/timetable"
)

// TimetableStoreForSave defines the timetable store methods needed to save a timetable.
type TimetableStoreForSave interface {
	Save(ctx context.Context, tt domain.Timetable) error
}

// SaveTimetableInput carries the full set of weekly rows.
type SaveTimetableInput struct {
	ClubID string
	Rows   []domain.Row
}

// SaveTimetableDeps holds dependencies for ExecuteSaveTimetable.
type SaveTimetableDeps struct {
	TimetableStore TimetableStoreForSave
	GenerateID     func() string
	Now            func() time.Time
}

// ExecuteSaveTimetable replaces a club's weekly timetable.
// PRE: every row carries a group, a valid day and HH:MM times
// POST: Rows without an ID receive one; the timetable is stored whole
func ExecuteSaveTimetable(ctx context.Context, input SaveTimetableInput, deps SaveTimetableDeps) (domain.Timetable, error) {
	rows := make([]domain.Row, len(input.Rows))
	copy(rows, input.Rows)
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = deps.GenerateID()
		}
	}

	tt := domain.Timetable{ClubID: input.ClubID, Rows: rows, UpdatedAt: deps.Now()}
	if err := tt.Validate(); err != nil {
		return domain.Timetable{}, err
	}
	if err := deps.TimetableStore.Save(ctx, tt); err != nil {
		return domain.Timetable{}, fmt.Errorf("save timetable: %w", err)
	}

	slog.Info("timetable_saved", "club_id", input.ClubID, "rows", len(rows))
	return tt, nil
}
