// Package week resolves Sunday-aligned 7-day windows from an
// arbitrary reference date. The window's first ISO date is the
// canonical week key used by visibility, stats, and the mutation
// engine.
package week

import (
	"time"

	"github.com/habitual-app/habitual/internal/types"
)

// Day describes one day of a resolved week window
type Day struct {
	ISODate string // e.g. "2024-03-10"
	Weekday string // e.g. "Sunday"
	Short   string // e.g. "Sun"
}

// Window is an ordered Sunday-to-Saturday span of 7 days
type Window struct {
	Days [7]Day
}

// Resolve computes the window containing ref. Time-of-day and
// location offsets within ref are ignored; only the calendar date
// matters. Resolving the same date always yields the same window.
func Resolve(ref time.Time) Window {
	// Normalize to midnight so weekday math is not affected by DST
	// or time-of-day.
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	sunday := day.AddDate(0, 0, -int(day.Weekday()))

	var w Window
	for i := 0; i < 7; i++ {
		d := sunday.AddDate(0, 0, i)
		w.Days[i] = Day{
			ISODate: d.Format(types.ISODate),
			Weekday: d.Weekday().String(),
			Short:   d.Weekday().String()[:3],
		}
	}
	return w
}

// ResolveISO resolves the window containing an ISO date string
func ResolveISO(isoDate string) (Window, error) {
	t, err := time.Parse(types.ISODate, isoDate)
	if err != nil {
		return Window{}, err
	}
	return Resolve(t), nil
}

// Start returns the window's first ISO date (a Sunday), the canonical
// week key.
func (w Window) Start() string {
	return w.Days[0].ISODate
}

// End returns the window's last ISO date (the following Saturday)
func (w Window) End() string {
	return w.Days[6].ISODate
}

// Contains reports whether the ISO date falls inside the window
func (w Window) Contains(isoDate string) bool {
	return isoDate >= w.Start() && isoDate <= w.End()
}

// Next returns the window one week later
func (w Window) Next() Window {
	return w.shift(7)
}

// Prev returns the window one week earlier
func (w Window) Prev() Window {
	return w.shift(-7)
}

func (w Window) shift(days int) Window {
	start, err := time.Parse(types.ISODate, w.Start())
	if err != nil {
		// Start always comes from Resolve, so it parses.
		return w
	}
	return Resolve(start.AddDate(0, 0, days))
}
