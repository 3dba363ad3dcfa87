package orchestrators

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultMidnightGrace is how long after local midnight the reclassifier fires.
const DefaultMidnightGrace = 5 * time.Second

// MidnightReclassifier re-runs a refresh once per local day, shortly after midnight.
// It is a one-shot timer that reschedules itself after every firing.
// INVARIANT: at most one timer is pending
type MidnightReclassifier struct {
	Refresh  func(ctx context.Context) error
	Location *time.Location
	Grace    time.Duration
	Timeout  time.Duration
	Now      func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NextMidnightDelay returns the wait from now until grace past the next local midnight.
// PRE: loc is non-nil
// POST: Returns a positive duration of at most 24h plus grace
func NextMidnightDelay(now time.Time, loc *time.Location, grace time.Duration) time.Duration {
	y, m, d := now.In(loc).Date()
	for day := d; ; day++ {
		next := time.Date(y, m, day, 0, 0, 0, 0, loc).Add(grace)
		if next.After(now) {
			return next.Sub(now)
		}
	}
}

// Start schedules the first firing. Calling Start on a running reclassifier reschedules it.
// PRE: Refresh is non-nil
// POST: Exactly one timer is pending until Stop is called
func (r *MidnightReclassifier) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = false
	r.scheduleLocked()
}

// Stop cancels the pending timer. A refresh already running is not interrupted.
func (r *MidnightReclassifier) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	slog.Info("midnight_reclassifier_stopped")
}

func (r *MidnightReclassifier) scheduleLocked() {
	if r.timer != nil {
		r.timer.Stop()
	}
	delay := NextMidnightDelay(r.now(), r.location(), r.grace())
	r.timer = time.AfterFunc(delay, r.fire)
	slog.Debug("midnight_reclassifier_scheduled", "in", delay.String())
}

func (r *MidnightReclassifier) fire() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	r.mu.Unlock()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if err := r.Refresh(ctx); err != nil {
		slog.Error("midnight_reclassify_failed", "error", err.Error())
	}
	cancel()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped && r.timer == nil {
		r.scheduleLocked()
	}
}

func (r *MidnightReclassifier) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *MidnightReclassifier) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

func (r *MidnightReclassifier) grace() time.Duration {
	if r.Grace != 0 {
		return r.Grace
	}
	return DefaultMidnightGrace
}
