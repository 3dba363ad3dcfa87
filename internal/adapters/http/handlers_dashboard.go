package web

import (
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/projections"
)

// handleDashboard handles GET /api/clubs/{club}/dashboard/{year}
func (a *app) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		Lang:         middleware.LocaleFromContext(r.Context()),
	}, projections.GetDashboardDeps{
		PlanStore:       a.stores.PlanStore,
		EvaluationStore: a.stores.EvaluationStore,
		RegisterStore:   a.stores.RegisterStore,
		AthleteStore:    a.stores.AthleteStore,
		CategoryIndex:   a.index,
	}, a.now())
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
