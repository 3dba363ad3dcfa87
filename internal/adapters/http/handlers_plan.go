package web

import (
	"net/http"
	"strconv"

	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/season"
)

// weekEditRequest carries exactly one edit field.
type weekEditRequest struct {
	Sessions  *int     `json:"sessions"`
	Hours     *float64 `json:"hours"`
	Physical  *int     `json:"physical"`
	Technical *int     `json:"technical"`
	Tactical  *int     `json:"tactical"`
	Test      *string  `json:"test"`
	Enabled   *bool    `json:"enabled"`
}

// edit converts the request into a week edit command. ok is false unless exactly one edit is named.
func (req weekEditRequest) edit() (plan.WeekEdit, bool) {
	var edits []plan.WeekEdit
	if req.Sessions != nil {
		edits = append(edits, plan.SetSessions{Sessions: *req.Sessions})
	}
	if req.Hours != nil {
		edits = append(edits, plan.SetHours{Hours: *req.Hours})
	}
	if req.Physical != nil {
		edits = append(edits, plan.SetPhysical{Percent: *req.Physical})
	}
	if req.Technical != nil {
		edits = append(edits, plan.SetTechnical{Percent: *req.Technical})
	}
	if req.Tactical != nil {
		edits = append(edits, plan.SetTactical{Percent: *req.Tactical})
	}
	if req.Test != nil {
		if req.Enabled == nil {
			return nil, false
		}
		edits = append(edits, plan.SetTestFlag{Test: plan.TestKind(*req.Test), Value: *req.Enabled})
	} else if req.Enabled != nil {
		return nil, false
	}
	if len(edits) != 1 {
		return nil, false
	}
	return edits[0], true
}

// evaluationRequest is one month of the evaluation sheet.
type evaluationRequest struct {
	PlannedSessions  int `json:"planned_sessions"`
	ExecutedSessions int `json:"executed_sessions"`
}

// evaluationResponse is the saved record and the reconciled plan.
type evaluationResponse struct {
	Record  evaluation.Record    `json:"record"`
	Plan    projections.PlanView `json:"plan"`
	Changed []season.MonthKey    `json:"changed_months"`
}

// handleGetPlan handles GET /api/clubs/{club}/plans/{year}
// The plan is reconciled against the evaluation sheet before it is shown.
func (a *app) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	result, err := orchestrators.ExecuteSyncPlan(r.Context(), orchestrators.SyncPlanInput{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
	}, orchestrators.SyncPlanDeps{
		PlanStore:       a.stores.PlanStore,
		EvaluationStore: a.stores.EvaluationStore,
		Now:             a.now,
	})
	if err != nil {
		writeError(w, r, err, msgLoadFailed)
		return
	}

	writeJSON(w, http.StatusOK, projections.BuildPlanView(result.Plan))
}

// handleEditWeek handles POST /api/clubs/{club}/plans/{year}/months/{month}/weeks/{week}
func (a *app) handleEditWeek(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}
	weekIndex, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		notify(w, r, http.StatusBadRequest, msgWeekNotFound)
		return
	}

	var req weekEditRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	edit, ok := req.edit()
	if !ok {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	p, err := orchestrators.ExecuteEditWeek(r.Context(), orchestrators.EditWeekInput{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		Month:        season.MonthKey(r.PathValue("month")),
		WeekIndex:    weekIndex,
		Edit:         edit,
	}, orchestrators.EditWeekDeps{
		PlanStore: a.stores.PlanStore,
		Now:       a.now,
	})
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusOK, projections.BuildPlanView(p))
}

// handleSaveEvaluation handles PUT /api/clubs/{club}/evaluations/{year}/months/{month}
func (a *app) handleSaveEvaluation(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}
	month, err := season.ParseMonthKey(r.PathValue("month"))
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	var req evaluationRequest
	if err := strictDecode(r, &req); err != nil {
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	result, err := orchestrators.ExecuteSaveEvaluation(r.Context(), orchestrators.SaveEvaluationInput{
		ClubID:       r.PathValue("club"),
		AcademicYear: year,
		Record: evaluation.Record{
			Month:            month.Key,
			PlannedSessions:  req.PlannedSessions,
			ExecutedSessions: req.ExecutedSessions,
		},
	}, orchestrators.SaveEvaluationDeps{
		EvaluationStore: a.stores.EvaluationStore,
		PlanStore:       a.stores.PlanStore,
		Now:             a.now,
	})
	if err != nil {
		writeError(w, r, err, msgSaveFailed)
		return
	}

	record, _ := result.Sheet.Record(month.Key)
	writeJSON(w, http.StatusOK, evaluationResponse{
		Record:  record,
		Plan:    projections.BuildPlanView(result.Sync.Plan),
		Changed: result.Sync.Changed,
	})
}
