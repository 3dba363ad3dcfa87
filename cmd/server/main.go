package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/storage"
	absenceStore "clubdesk/internal/adapters/storage/absence"
	evaluationStore "clubdesk/internal/adapters/storage/evaluation"
	planStore "clubdesk/internal/adapters/storage/plan"
	rosterStore "clubdesk/internal/adapters/storage/roster"
	timetableStore "clubdesk/internal/adapters/storage/timetable"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// shutdownTimeout bounds how long in-flight requests may drain on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Production() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run serves until ctx is cancelled, then drains requests and stops the reclassifier.
func run(ctx context.Context, cfg config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	lang, err := cfg.Language()
	if err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}
	csrfKey, err := cfg.CSRFKey()
	if err != nil {
		return fmt.Errorf("invalid CSRF key: %w", err)
	}

	// WAL mode, foreign keys and a busy timeout for concurrent writers
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	timedDB := storage.NewTimedDB(db, cfg.SlowQueryMs)
	defer timedDB.Close()

	timedDB.RawDB().SetMaxOpenConns(25)
	timedDB.RawDB().SetMaxIdleConns(25)

	if err := timedDB.Ping(); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	if err := storage.MigrateDB(timedDB.RawDB(), cfg.DBPath); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	stores := &web.Stores{
		PlanStore:       planStore.NewSQLiteStore(timedDB),
		EvaluationStore: evaluationStore.NewSQLiteStore(timedDB),
		RegisterStore:   absenceStore.NewSQLiteStore(timedDB),
		AthleteStore:    rosterStore.NewSQLiteStore(timedDB),
		TimetableStore:  timetableStore.NewSQLiteStore(timedDB),
	}

	// Categories follow the club's local calendar day.
	now := func() time.Time { return time.Now().In(loc) }
	index := projections.NewCategoryIndex(stores.AthleteStore, now)
	if err := index.Refresh(context.Background()); err != nil {
		return fmt.Errorf("classify athletes: %w", err)
	}
	reclassifier := &orchestrators.MidnightReclassifier{
		Refresh:  index.Refresh,
		Location: loc,
		Now:      now,
	}
	reclassifier.Start()
	defer reclassifier.Stop()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: web.NewMux(stores, web.Options{
			CSRFKey:        csrfKey,
			TrustedOrigins: cfg.TrustedOrigins,
			Secure:         cfg.Production(),
			DefaultLang:    lang,
			SlowRequestMs:  cfg.SlowReqMs,
			CategoryIndex:  index,
			Now:            now,
			GenerateID:     uuid.NewString,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("clubdesk %s starting on %s (env=%s, schema=%d, tz=%s)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion(), loc)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		slog.Info("server_stopped", "slow_queries", timedDB.SlowQueries())
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
