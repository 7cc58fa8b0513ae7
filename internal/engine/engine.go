// Package engine holds the mutation engine: pure transition functions
// over the habit collection. Every function takes the current
// collection and returns the next one without touching its input, so
// callers can validate-then-commit atomically.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/habitual-app/habitual/internal/types"
)

var (
	// ErrNotFound is returned when a mutation references an unknown
	// habit id. Callers treat it as a no-op, not a crash.
	ErrNotFound = errors.New("habit not found")

	// ErrInvalidInput is returned when a mutation's arguments are
	// rejected before any state change.
	ErrInvalidInput = errors.New("invalid input")
)

// ToggleCompletion flips membership of date in the habit's completed
// set.
func ToggleCompletion(c types.Collection, id, isoDate string) (types.Collection, error) {
	next := c.Clone()
	h := next.Find(id)
	if h == nil {
		return c, fmt.Errorf("toggle completion %s: %w", id, ErrNotFound)
	}
	h.CompletedDates = h.CompletedDates.Toggle(isoDate)
	return next, nil
}

// ToggleReminderDone marks a reminder done as of today, or clears it.
// Reminders always complete "now", never on the viewed week's day.
func ToggleReminderDone(c types.Collection, id, today string) (types.Collection, error) {
	next := c.Clone()
	h := next.Find(id)
	if h == nil {
		return c, fmt.Errorf("toggle reminder %s: %w", id, ErrNotFound)
	}
	if h.Done() {
		h.CompletedDates = nil
	} else {
		h.CompletedDates = types.DateSet{today}
	}
	return next, nil
}

// CreateHabit appends a new habit created as of the viewed week's
// first day. The title must be non-empty after trimming.
func CreateHabit(c types.Collection, title string, kind types.Kind, category types.Category, weekStart string) (types.Collection, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return c, fmt.Errorf("create habit: empty title: %w", ErrInvalidInput)
	}
	if !category.IsValid() {
		category = types.CategoryOther
	}
	h := &types.Habit{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  category,
		Kind:      kind.Normalize(),
		CreatedAt: weekStart,
	}
	next := c.Clone()
	return append(next, h), nil
}

// ExcludeForDay hides the habit for a single day. Idempotent: an
// already-excluded date is a no-op. Excluding a date also clears any
// completion recorded for it, keeping the two sets disjoint.
func ExcludeForDay(c types.Collection, id, isoDate string) (types.Collection, error) {
	next := c.Clone()
	h := next.Find(id)
	if h == nil {
		return c, fmt.Errorf("exclude day %s: %w", id, ErrNotFound)
	}
	if h.ExcludedDates.Has(isoDate) {
		return next, nil
	}
	h.ExcludedDates = h.ExcludedDates.Add(isoDate)
	h.CompletedDates = h.CompletedDates.Remove(isoDate)
	return next, nil
}

// RemoveOrArchive soft-deletes a habit with history and hard-deletes
// one without. A habit with any completion strictly before the viewed
// week's start is archived as of that week start so its history stays
// readable; otherwise it is removed outright.
func RemoveOrArchive(c types.Collection, id, weekStart string) (types.Collection, error) {
	next := c.Clone()
	h := next.Find(id)
	if h == nil {
		return c, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	if hasHistoryBefore(h, weekStart) {
		h.ArchivedAt = weekStart
		return next, nil
	}
	out := make(types.Collection, 0, len(next)-1)
	for _, other := range next {
		if other.ID != id {
			out = append(out, other)
		}
	}
	return out, nil
}

func hasHistoryBefore(h *types.Habit, weekStart string) bool {
	for _, d := range h.CompletedDates {
		if d < weekStart {
			return true
		}
	}
	return false
}
