package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
	"clubdesk/internal/domain/timetable"
)

// errorResponse is the single notification shown to the user.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// notify writes a localized notification with the given status.
func notify(w http.ResponseWriter, r *http.Request, status int, key string) {
	tag := middleware.LocaleFromContext(r.Context())
	writeJSON(w, status, errorResponse{Error: localize(tag, key)})
}

// internalError logs err and answers 500 with a localized notification.
func internalError(w http.ResponseWriter, r *http.Request, err error, key string) {
	slog.Error("internal_error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	notify(w, r, http.StatusInternalServerError, key)
}

// writeError maps domain and storage errors to a status and notification.
// Anything unrecognised is a load or save failure: fallbackKey decides which.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallbackKey string) {
	var parseErr *time.ParseError
	switch {
	case errors.Is(err, season.ErrInvalidYear):
		notify(w, r, http.StatusBadRequest, msgInvalidYear)
	case errors.Is(err, season.ErrUnknownMonth):
		notify(w, r, http.StatusBadRequest, msgUnknownMonth)
	case errors.Is(err, plan.ErrMonthNotFound):
		notify(w, r, http.StatusNotFound, msgUnknownMonth)
	case errors.Is(err, plan.ErrWeekNotFound):
		notify(w, r, http.StatusNotFound, msgWeekNotFound)
	case errors.Is(err, plan.ErrUnknownTest):
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
	case errors.Is(err, absence.ErrInvalidDate):
		notify(w, r, http.StatusBadRequest, msgInvalidDate)
	case errors.Is(err, absence.ErrOutsideSeason):
		notify(w, r, http.StatusBadRequest, msgDateOutsideSeason)
	case errors.Is(err, absence.ErrEmptyAthleteID):
		notify(w, r, http.StatusBadRequest, msgInvalidRequest)
	case errors.Is(err, projections.ErrInvalidMonthPrefix):
		notify(w, r, http.StatusBadRequest, msgInvalidMonth)
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrNegativeWeight),
		errors.Is(err, roster.ErrFutureBirth):
		notify(w, r, http.StatusBadRequest, msgInvalidAthlete)
	case errors.Is(err, timetable.ErrEmptyGroup),
		errors.Is(err, timetable.ErrInvalidDay),
		errors.Is(err, timetable.ErrEmptyStartTime),
		errors.Is(err, timetable.ErrEmptyEndTime),
		errors.As(err, &parseErr):
		notify(w, r, http.StatusBadRequest, msgInvalidTimetable)
	case errors.Is(err, storage.ErrNotFound):
		notify(w, r, http.StatusNotFound, msgNotFound)
	default:
		internalError(w, r, err, fallbackKey)
	}
}

// pathYear reads and validates the {year} path segment.
func pathYear(r *http.Request) (season.AcademicYear, error) {
	n, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		return 0, season.ErrInvalidYear
	}
	year := season.AcademicYear(n)
	if err := year.Validate(); err != nil {
		return 0, err
	}
	return year, nil
}
