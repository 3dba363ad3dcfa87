package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/category"
)

type saveAthleteRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD, empty when unknown
	Gender      string  `json:"gender"`
	Weight      float64 `json:"weight"`
	WeightClass string  `json:"weight_class"`
}

type rosterResponse struct {
	Athletes []projections.RosterEntry `json:"athletes"`
	Page     listutil.PageInfo         `json:"page"`
}

type saveAthleteResponse struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Category            category.Label `json:"category,omitempty"`
	CategoryName        string         `json:"category_name,omitempty"`
	Weight              float64        `json:"weight"`
	SelectedWeightClass string         `json:"selected_weight_class,omitempty"`
}

// handleGetRoster handles GET /api/clubs/{club}/roster
// Supports q, category, gender, sort (name|age|weight|category), dir, page and per_page.
func (a *app) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	params := listutil.Parse(r.URL.Query(), projections.RosterSortColumns, projections.RosterFilterKeys)
	entries, err := projections.QueryGetRoster(r.Context(), projections.GetRosterQuery{
		ClubID: r.PathValue("club"),
		Lang:   middleware.LocaleFromContext(r.Context()),
	}, projections.GetRosterDeps{
		AthleteStore:  a.stores.AthleteStore,
		CategoryIndex: a.index,
	}, a.now())
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	page, info := listutil.Paginate(projections.FilterRoster(entries, params), params)
	writeJSON(w, http.StatusOK, rosterResponse{Athletes: page, Page: info})
}

// handleSaveAthlete handles POST /api/clubs/{club}/roster
// A request without an id creates the athlete (201); otherwise it is updated (200).
func (a *app) handleSaveAthlete(w http.ResponseWriter, r *http.Request) {
	var req saveAthleteRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	var dob *time.Time
	if s := strings.TrimSpace(req.DateOfBirth); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			notify(w, r, http.StatusBadRequest, msgInvalidAthlete)
			return
		}
		dob = &t
	}

	athlete, err := orchestrators.ExecuteSaveAthlete(r.Context(), orchestrators.SaveAthleteInput{
		ID:          req.ID,
		ClubID:      r.PathValue("club"),
		Name:        req.Name,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Weight:      req.Weight,
		WeightClass: req.WeightClass,
	}, orchestrators.SaveAthleteDeps{
		AthleteStore: a.stores.AthleteStore,
		GenerateID:   a.newID,
		Now:          a.now,
	})
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	a.refreshIndex(r)

	now := a.now()
	resp := saveAthleteResponse{ID: athlete.ID, Name: athlete.Name, Weight: athlete.Weight}
	if label, ok := athlete.Category(now); ok {
		resp.Category = label
		resp.CategoryName = category.DisplayName(label, middleware.LocaleFromContext(r.Context()))
	}
	if sel, ok := athlete.SelectedWeightClass(now); ok {
		resp.SelectedWeightClass = sel
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

// handleDeleteAthlete handles DELETE /api/clubs/{club}/roster/{id}
func (a *app) handleDeleteAthlete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteAthlete(r.Context(), orchestrators.DeleteAthleteInput{
		ClubID:    r.PathValue("club"),
		AthleteID: r.PathValue("id"),
	}, orchestrators.DeleteAthleteDeps{
		AthleteStore: a.stores.AthleteStore,
	})
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	a.refreshIndex(r)
	w.WriteHeader(http.StatusNoContent)
}

// refreshIndex reclassifies the roster after a change. Failures keep the previous index.
func (a *app) refreshIndex(r *http.Request) {
	if a.index == nil {
		return
	}
	if err := a.index.Refresh(r.Context()); err != nil {
		slog.Warn("category_index_refresh_failed", "error", err.Error())
	}
}
