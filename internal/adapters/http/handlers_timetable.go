package web

import (
	"errors"
	"net/http"

	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/domain/timetable"
)

type timetableRowView struct {
	timetable.Row
	DurationHours float64 `json:"duration_hours"`
}

type timetableView struct {
	Rows        []timetableRowView `json:"rows"`
	WeeklyHours map[string]float64 `json:"weekly_hours"`
}

type saveTimetableRequest struct {
	Rows []timetable.Row `json:"rows"`
}

func buildTimetableView(tt timetable.Timetable) timetableView {
	view := timetableView{Rows: []timetableRowView{}, WeeklyHours: map[string]float64{}}
	for _, row := range tt.Sorted() {
		hours, _ := tt.DurationHours(row.ID)
		view.Rows = append(view.Rows, timetableRowView{Row: row, DurationHours: hours})
		if _, seen := view.WeeklyHours[row.Group]; !seen {
			view.WeeklyHours[row.Group] = tt.WeeklyHours(row.Group)
		}
	}
	return view
}

// handleGetTimetable handles GET /api/clubs/{club}/timetable
func (a *app) handleGetTimetable(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("club")
	tt, err := a.stores.TimetableStore.Get(r.Context(), clubID)
	if errors.Is(err, storage.ErrNotFound) {
		tt = timetable.Timetable{ClubID: clubID}
	} else if err != nil {
		internalError(w, r, err, msgLoadFailed)
		return
	}

	writeJSON(w, http.StatusOK, buildTimetableView(tt))
}

// handleSaveTimetable handles PUT /api/clubs/{club}/timetable
// The request replaces every row of the club's timetable.
func (a *app) handleSaveTimetable(w http.ResponseWriter, r *http.Request) {
	var req saveTimetableRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	tt, err := orchestrators.ExecuteSaveTimetable(r.Context(), orchestrators.SaveTimetableInput{
		ClubID: r.PathValue("club"),
		Rows:   req.Rows,
	}, orchestrators.SaveTimetableDeps{
		TimetableStore: a.stores.TimetableStore,
		GenerateID:     a.newID,
		Now:            a.now,
	})
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusOK, buildTimetableView(tt))
}
