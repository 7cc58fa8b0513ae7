// Package display renders the weekly dashboard for terminal output.
// Both the one-shot CLI commands and the REPL use it.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/habitual-app/habitual/internal/stats"
	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/visibility"
	"github.com/habitual-app/habitual/internal/week"
)

// Week writes the dashboard for one week: the habit grid, the
// reminder list, and completion statistics. Habits and reminders are
// numbered so mutation commands can reference rows instead of ids.
func Week(out io.Writer, w week.Window, habits, reminders []*types.Habit, ws stats.WeekStats) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(out, "\n%s\n\n", cyan(fmt.Sprintf("=== Week of %s ===", w.Start())))

	// Header row: day short names.
	fmt.Fprintf(out, "  %-28s", "")
	for _, day := range w.Days {
		fmt.Fprintf(out, " %s", day.Short)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s\n", yellow("Habits:"))
	if len(habits) == 0 {
		fmt.Fprintf(out, "  %s\n", gray("No habits this week"))
	}
	for i, h := range habits {
		fmt.Fprintf(out, "  %2d. %-24s", i+1, truncate(h.Title, 24))
		for _, day := range w.Days {
			switch {
			case !visibility.ActiveForDay(h, day):
				fmt.Fprintf(out, " %s", gray(" - "))
			case h.CompletedDates.Has(day.ISODate):
				fmt.Fprintf(out, " %s", green(" ✓ "))
			default:
				fmt.Fprintf(out, " %s", " ○ ")
			}
		}
		fmt.Fprintf(out, "  %s\n", gray(string(h.Category)))
	}

	fmt.Fprintf(out, "\n%s\n", yellow("Reminders:"))
	if len(reminders) == 0 {
		fmt.Fprintf(out, "  %s\n", gray("No reminders this week"))
	}
	for i, r := range reminders {
		mark := "○"
		if r.Done() {
			mark = green("✓")
		}
		fmt.Fprintf(out, "  %2d. %s %s\n", i+1, mark, r.Title)
	}

	fmt.Fprintf(out, "\n%s ", yellow("Week:"))
	fmt.Fprintf(out, "%d/%d done (%.0f%%)\n", ws.Completed, ws.Total, ws.Rate*100)
	for _, d := range ws.Days {
		if d.Total == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s  %d/%d (%.0f%%)\n", d.ISODate, d.Completed, d.Total, d.Rate*100)
	}
	fmt.Fprintln(out)
}

// Tips writes the insight tips list
func Tips(out io.Writer, tips []string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(out, "\n%s\n", cyan("=== Insights ==="))
	for _, tip := range tips {
		fmt.Fprintf(out, "  • %s\n", tip)
	}
	fmt.Fprintln(out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
