package web

import (
	"net/http"

	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/season"
)

type toggleAbsenceRequest struct {
	AthleteID string `json:"athlete_id"`
	Date      string `json:"date"`
}

type toggleAbsenceResponse struct {
	AthleteID string `json:"athlete_id"`
	Date      string `json:"date"`
	IsAbsent  bool   `json:"is_absent"`
}

type markAllRequest struct {
	Date       string   `json:"date"`
	AthleteIDs []string `json:"athlete_ids"`
}

type markAllResponse struct {
	Date    string `json:"date"`
	Absent  int    `json:"absent"`
	Records int    `json:"records"`
}

func (a *app) absenceDeps() orchestrators.AbsenceDeps {
	return orchestrators.AbsenceDeps{
		RegisterStore: a.stores.RegisterStore,
		AthleteStore:  a.stores.AthleteStore,
		Now:           a.now,
	}
}

// handleAttendanceStats handles GET /api/clubs/{club}/attendance/{year}/stats?month=YYYY-MM
// month defaults to the current month, clamped into the season of {year}.
func (a *app) handleAttendanceStats(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}
	month := r.URL.Query().Get("month")
	if month == "" {
		y, m := year.ClampMonth(a.now())
		month = season.MonthPrefix(y, m)
	}

	result, err := projections.QueryGetAttendanceStats(r.Context(), projections.GetAttendanceStatsQuery{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		Month:        month,
	}, projections.GetAttendanceStatsDeps{
		RegisterStore: a.stores.RegisterStore,
		AthleteStore:  a.stores.AthleteStore,
	})
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleToggleAbsence handles POST /api/clubs/{club}/attendance/{year}/toggle
func (a *app) handleToggleAbsence(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}
	var req toggleAbsenceRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	reg, err := orchestrators.ExecuteToggleAbsence(r.Context(), orchestrators.ToggleAbsenceInput{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		AthleteID:    req.AthleteID,
		Date:         req.Date,
	}, a.absenceDeps())
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusOK, toggleAbsenceResponse{
		AthleteID: req.AthleteID,
		Date:      req.Date,
		IsAbsent:  absence.IsAbsent(reg.Records, req.AthleteID, req.Date),
	})
}

// handleMarkAllAbsent handles POST /api/clubs/{club}/attendance/{year}/mark-all
// An empty athlete_ids list marks the club's whole roster.
func (a *app) handleMarkAllAbsent(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}
	var req markAllRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	reg, err := orchestrators.ExecuteMarkAllAbsent(r.Context(), orchestrators.MarkAllAbsentInput{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		Date:         req.Date,
		AthleteIDs:   req.AthleteIDs,
	}, a.absenceDeps())
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	absent := 0
	for _, rec := range reg.Records {
		if rec.Date == req.Date && rec.IsAbsent {
			absent++
		}
	}
	writeJSON(w, http.StatusOK, markAllResponse{Date: req.Date, Absent: absent, Records: len(reg.Records)})
}
