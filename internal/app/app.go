// Package app wires the habit collection, its persistent store, and
// the insight generator together. The App owns the single in-memory
// collection; every mutation goes through the engine's pure
// transitions and is persisted best-effort afterwards.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/habitual-app/habitual/internal/ai"
	"github.com/habitual-app/habitual/internal/engine"
	"github.com/habitual-app/habitual/internal/stats"
	"github.com/habitual-app/habitual/internal/storage"
	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/visibility"
	"github.com/habitual-app/habitual/internal/week"
)

// App is the top-level controller for one session
type App struct {
	mu         sync.Mutex
	store      storage.Store
	insights   *ai.Insights
	collection types.Collection
	window     week.Window
	now        func() time.Time

	insightMu     sync.Mutex
	insightGen    uint64
	insightCancel context.CancelFunc

	// generateFn indirection lets tests drive RequestInsights
	// without a network client.
	generateFn func(ctx context.Context) []string
}

// Config holds app configuration
type Config struct {
	Store    storage.Store
	Insights *ai.Insights
	Now      func() time.Time // defaults to time.Now
}

// New loads the saved collection and creates the controller. A store
// with no saved state yields an empty collection; a read failure is
// reported but still starts an empty session (the worst case is a
// fresh start, never a crash).
func New(ctx context.Context, cfg *Config) (*App, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	c, err := cfg.Store.Load(ctx)
	if err != nil && !errors.Is(err, storage.ErrNoState) {
		fmt.Fprintf(os.Stderr, "warning: failed to load saved habits, starting empty: %v\n", err)
		c = nil
	}

	return &App{
		store:      cfg.Store,
		insights:   cfg.Insights,
		collection: c,
		window:     week.Resolve(now()),
		now:        now,
	}, nil
}

// Window returns the currently viewed week
func (a *App) Window() week.Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// NextWeek advances the viewed week and returns it
func (a *App) NextWeek() week.Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.window = a.window.Next()
	return a.window
}

// PrevWeek rewinds the viewed week and returns it
func (a *App) PrevWeek() week.Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.window = a.window.Prev()
	return a.window
}

// ViewWeekOf points the view at the week containing the ISO date
func (a *App) ViewWeekOf(isoDate string) error {
	w, err := week.ResolveISO(isoDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", isoDate, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.window = w
	return nil
}

// CurrentWeek resets the view to the week containing today
func (a *App) CurrentWeek() week.Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.window = week.Resolve(a.now())
	return a.window
}

// Habits returns the recurring habits visible for the viewed week
func (a *App) Habits() []*types.Habit {
	a.mu.Lock()
	defer a.mu.Unlock()
	return visibility.Visible(a.collection, a.window, types.KindHabit)
}

// Reminders returns the reminders visible for the viewed week
func (a *App) Reminders() []*types.Habit {
	a.mu.Lock()
	defer a.mu.Unlock()
	return visibility.Visible(a.collection, a.window, types.KindReminder)
}

// Stats returns completion statistics for the viewed week
func (a *App) Stats() stats.WeekStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.ForWeek(a.collection, a.window)
}

// Collection returns a deep copy of the current collection
func (a *App) Collection() types.Collection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.collection.Clone()
}

// AddHabit creates a habit or reminder dated to the viewed week start
func (a *App) AddHabit(ctx context.Context, title string, kind types.Kind, category types.Category) error {
	return a.apply(ctx, func(c types.Collection) (types.Collection, error) {
		return engine.CreateHabit(c, title, kind, category, a.window.Start())
	})
}

// ToggleCompletion flips a habit's completion for a date
func (a *App) ToggleCompletion(ctx context.Context, id, isoDate string) error {
	return a.apply(ctx, func(c types.Collection) (types.Collection, error) {
		return engine.ToggleCompletion(c, id, isoDate)
	})
}

// ToggleReminderDone marks a reminder done as of today, or clears it.
// Reminders complete "now", not on the viewed week's day.
func (a *App) ToggleReminderDone(ctx context.Context, id string) error {
	today := a.now().Format(types.ISODate)
	return a.apply(ctx, func(c types.Collection) (types.Collection, error) {
		return engine.ToggleReminderDone(c, id, today)
	})
}

// SkipDay excludes a habit for a single day
func (a *App) SkipDay(ctx context.Context, id, isoDate string) error {
	return a.apply(ctx, func(c types.Collection) (types.Collection, error) {
		return engine.ExcludeForDay(c, id, isoDate)
	})
}

// Remove archives a habit with history before the viewed week, or
// deletes it outright when there is none.
func (a *App) Remove(ctx context.Context, id string) error {
	return a.apply(ctx, func(c types.Collection) (types.Collection, error) {
		return engine.RemoveOrArchive(c, id, a.window.Start())
	})
}

// apply runs a transition atomically: the collection is only replaced
// when the transition succeeds, and persistence happens after the
// commit so a save failure never loses in-memory state.
func (a *App) apply(ctx context.Context, fn func(types.Collection) (types.Collection, error)) error {
	a.mu.Lock()
	next, err := fn(a.collection)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.collection = next
	a.mu.Unlock()

	if err := a.store.Save(ctx, next); err != nil {
		// Best-effort persistence: the in-memory state stays
		// authoritative for the session.
		fmt.Fprintf(os.Stderr, "warning: failed to save habits: %v\n", err)
	}
	return nil
}

// GenerateInsights synchronously produces tips for the viewed week
func (a *App) GenerateInsights(ctx context.Context) []string {
	if a.insights == nil {
		return ai.FallbackTips()
	}
	a.mu.Lock()
	summaries := ai.BuildSummaries(a.collection, a.window)
	a.mu.Unlock()
	return a.insights.Generate(ctx, summaries)
}

// RequestInsights starts an asynchronous tip request. A newer request
// supersedes any in-flight one: the older request's context is
// canceled and its result, should it still arrive, is dropped. The
// callback runs on a background goroutine only for the latest
// request.
func (a *App) RequestInsights(onResult func(tips []string)) {
	a.insightMu.Lock()
	if a.insightCancel != nil {
		a.insightCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.insightCancel = cancel
	a.insightGen++
	gen := a.insightGen
	a.insightMu.Unlock()

	generate := a.generateFn
	if generate == nil {
		generate = a.GenerateInsights
	}

	go func() {
		defer cancel()
		tips := generate(ctx)

		a.insightMu.Lock()
		stale := gen != a.insightGen
		a.insightMu.Unlock()
		if stale {
			return
		}
		onResult(tips)
	}()
}
