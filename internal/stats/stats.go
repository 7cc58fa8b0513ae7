// Package stats derives completion counts and rates from the
// day-active habit sets of a week.
package stats

import (
	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/visibility"
	"github.com/habitual-app/habitual/internal/week"
)

// DayStats holds one day's completion numbers
type DayStats struct {
	ISODate   string
	Completed int
	Total     int
	Rate      float64 // 0 when Total is 0
}

// WeekStats holds per-day and whole-week completion numbers. The week
// rate is completions-over-tasks across the week, not an average of
// daily rates: a day with no active habits drops out of both sums.
type WeekStats struct {
	Days      [7]DayStats
	Completed int
	Total     int
	Rate      float64
}

// ForWeek computes completion statistics for every day of the window
func ForWeek(c types.Collection, w week.Window) WeekStats {
	var ws WeekStats
	for i, day := range w.Days {
		active := visibility.ActiveOn(c, w, day)
		ds := DayStats{ISODate: day.ISODate, Total: len(active)}
		for _, h := range active {
			if h.CompletedDates.Has(day.ISODate) {
				ds.Completed++
			}
		}
		if ds.Total > 0 {
			ds.Rate = float64(ds.Completed) / float64(ds.Total)
		}
		ws.Days[i] = ds
		ws.Completed += ds.Completed
		ws.Total += ds.Total
	}
	if ws.Total > 0 {
		ws.Rate = float64(ws.Completed) / float64(ws.Total)
	}
	return ws
}
