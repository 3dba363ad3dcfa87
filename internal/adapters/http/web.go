package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"clubdesk/internal/adapters/http/middleware"
	absenceStore "clubdesk/internal/adapters/storage/absence"
	evaluationStore "clubdesk/internal/adapters/storage/evaluation"
	planStore "clubdesk/internal/adapters/storage/plan"
	rosterStore "clubdesk/internal/adapters/storage/roster"
	timetableStore "clubdesk/internal/adapters/storage/timetable"
	"clubdesk/internal/application/projections"
)

// Stores holds all storage dependencies.
type Stores struct {
	PlanStore       planStore.Store
	EvaluationStore evaluationStore.Store
	RegisterStore   absenceStore.Store
	AthleteStore    rosterStore.Store
	TimetableStore  timetableStore.Store
}

// Options configures the HTTP surface.
type Options struct {
	CSRFKey        []byte // 32 bytes
	TrustedOrigins []string
	Secure         bool
	DefaultLang    language.Tag
	SlowRequestMs  int
	CategoryIndex  *projections.CategoryIndex // optional
	Now            func() time.Time
	GenerateID     func() string
}

// app carries the handler dependencies.
type app struct {
	stores *Stores
	index  *projections.CategoryIndex
	now    func() time.Time
	newID  func() string
}

// NewMux wires HTTP handlers for the app.
// PRE: s has every store set; opts.CSRFKey is 32 bytes
// POST: Returns the handler with the full middleware chain applied
func NewMux(s *Stores, opts Options) http.Handler {
	a := &app{
		stores: s,
		index:  opts.CategoryIndex,
		now:    opts.Now,
		newID:  opts.GenerateID,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	fallback := opts.DefaultLang
	if fallback == language.Und {
		fallback = language.Arabic
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)

	// Apply middleware: Timing -> Locale -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(opts.CSRFKey, opts.TrustedOrigins, opts.Secure),
		middleware.Locale(fallback),
		middleware.Timing(opts.SlowRequestMs),
	)
}

func (a *app) registerRoutes(mux *http.ServeMux) {
	// Training plan
	mux.HandleFunc("GET /api/clubs/{club}/plans/{year}", a.handleGetPlan)
	mux.HandleFunc("POST /api/clubs/{club}/plans/{year}/months/{month}/weeks/{week}", a.handleEditWeek)

	// Session evaluation
	mux.HandleFunc("PUT /api/clubs/{club}/evaluations/{year}/months/{month}", a.handleSaveEvaluation)

	// Attendance
	mux.HandleFunc("GET /api/clubs/{club}/attendance/{year}/stats", a.handleAttendanceStats)
	mux.HandleFunc("POST /api/clubs/{club}/attendance/{year}/toggle", a.handleToggleAbsence)
	mux.HandleFunc("POST /api/clubs/{club}/attendance/{year}/mark-all", a.handleMarkAllAbsent)

	// Roster
	mux.HandleFunc("GET /api/clubs/{club}/roster", a.handleGetRoster)
	mux.HandleFunc("POST /api/clubs/{club}/roster", a.handleSaveAthlete)
	mux.HandleFunc("DELETE /api/clubs/{club}/roster/{id}", a.handleDeleteAthlete)

	// Dashboard
	mux.HandleFunc("GET /api/clubs/{club}/dashboard/{year}", a.handleDashboard)

	// Timetable
	mux.HandleFunc("GET /api/clubs/{club}/timetable", a.handleGetTimetable)
	mux.HandleFunc("PUT /api/clubs/{club}/timetable", a.handleSaveTimetable)
}
