package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/habitual-app/habitual/internal/types"
)

// habitRow resolves a 1-based row number from the week listing
func habitRow(arg string) (*types.Habit, error) {
	return rowAt(controller.Habits(), arg)
}

func reminderRow(arg string) (*types.Habit, error) {
	return rowAt(controller.Reminders(), arg)
}

func rowAt(rows []*types.Habit, arg string) (*types.Habit, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(rows) {
		return nil, fmt.Errorf("no row %q (run 'habitual week' to see numbering)", arg)
	}
	return rows[n-1], nil
}

// resolveDay maps a weekday name within the viewed week, or a full
// ISO date, to the target day.
func resolveDay(arg string) (string, error) {
	w := controller.Window()
	for _, day := range w.Days {
		if strings.EqualFold(arg, day.Short) || strings.EqualFold(arg, day.Weekday) {
			return day.ISODate, nil
		}
	}
	if _, err := time.Parse(types.ISODate, arg); err == nil {
		return arg, nil
	}
	return "", fmt.Errorf("unknown day %q (use Sun..Sat or YYYY-MM-DD)", arg)
}
