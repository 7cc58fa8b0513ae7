// Package visibility decides which habits are shown for a given week
// and which are further hidden on individual days.
package visibility

import (
	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/week"
)

// Visible returns the habits of the given kind shown for the week: a
// habit is visible when it was created on or before the week's last
// day and is not archived as of the week's first day. Archival is
// compared against the week START: a habit archived mid-week stays
// visible for that whole week and disappears from the next one.
func Visible(c types.Collection, w week.Window, kind types.Kind) []*types.Habit {
	var out []*types.Habit
	for _, h := range c {
		if h.Kind.Normalize() != kind {
			continue
		}
		if visibleForWeek(h, w) {
			out = append(out, h)
		}
	}
	return out
}

func visibleForWeek(h *types.Habit, w week.Window) bool {
	if h.CreatedAt > w.End() {
		return false
	}
	if h.ArchivedAt != "" && h.ArchivedAt <= w.Start() {
		return false
	}
	return true
}

// ActiveForDay reports whether a week-visible habit is shown on the
// given day. Exclusion hides exactly one day and never leaks into
// other days or weeks.
func ActiveForDay(h *types.Habit, day week.Day) bool {
	return !h.ExcludedDates.Has(day.ISODate)
}

// ActiveOn returns the habits active on one day of the week:
// week-visible habits minus those excluded for that specific day.
// Reminders are gated by created/archived exactly like habits but
// ignore per-day exclusion, so this only applies to KindHabit.
func ActiveOn(c types.Collection, w week.Window, day week.Day) []*types.Habit {
	var out []*types.Habit
	for _, h := range Visible(c, w, types.KindHabit) {
		if ActiveForDay(h, day) {
			out = append(out, h)
		}
	}
	return out
}
