package week

import (
	"testing"
	"time"

	"github.com/habitual-app/habitual/internal/types"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(types.ISODate, iso)
	if err != nil {
		t.Fatalf("bad test date %s: %v", iso, err)
	}
	return d
}

func TestResolveSundayAlignment(t *testing.T) {
	tests := []struct {
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"2024-03-10", "2024-03-10", "2024-03-16"}, // ref is a Sunday
		{"2024-03-13", "2024-03-10", "2024-03-16"}, // mid-week
		{"2024-03-16", "2024-03-10", "2024-03-16"}, // ref is a Saturday
		{"2024-01-01", "2023-12-31", "2024-01-06"}, // year boundary
		{"2024-02-29", "2024-02-25", "2024-03-02"}, // leap day, month boundary
	}
	for _, tt := range tests {
		w := Resolve(mustDate(t, tt.ref))
		if w.Start() != tt.wantStart {
			t.Errorf("Resolve(%s).Start() = %s, want %s", tt.ref, w.Start(), tt.wantStart)
		}
		if w.End() != tt.wantEnd {
			t.Errorf("Resolve(%s).End() = %s, want %s", tt.ref, w.End(), tt.wantEnd)
		}
		if w.Days[0].Weekday != "Sunday" {
			t.Errorf("Resolve(%s) first day is %s, want Sunday", tt.ref, w.Days[0].Weekday)
		}
		if w.Days[6].Weekday != "Saturday" {
			t.Errorf("Resolve(%s) last day is %s, want Saturday", tt.ref, w.Days[6].Weekday)
		}
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC)
	early := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	if Resolve(late) != Resolve(early) {
		t.Error("windows differ for the same calendar date")
	}
}

func TestResolveIdempotentFromOwnStart(t *testing.T) {
	// Resolving a window's own start must reproduce the window.
	for _, ref := range []string{"2024-03-10", "2024-03-13", "2024-12-31", "2024-02-29"} {
		w := Resolve(mustDate(t, ref))
		again, err := ResolveISO(w.Start())
		if err != nil {
			t.Fatalf("ResolveISO(%s): %v", w.Start(), err)
		}
		if w != again {
			t.Errorf("Resolve(%s) not idempotent under re-resolution from %s", ref, w.Start())
		}
	}
}

func TestDayDescriptors(t *testing.T) {
	w := Resolve(mustDate(t, "2024-03-10"))
	wantShort := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, d := range w.Days {
		if d.Short != wantShort[i] {
			t.Errorf("day %d short name = %s, want %s", i, d.Short, wantShort[i])
		}
	}
	if w.Days[3].ISODate != "2024-03-13" {
		t.Errorf("day 3 = %s, want 2024-03-13", w.Days[3].ISODate)
	}
}

func TestNextPrevNavigation(t *testing.T) {
	w := Resolve(mustDate(t, "2024-03-13"))
	next := w.Next()
	if next.Start() != "2024-03-17" {
		t.Errorf("Next().Start() = %s, want 2024-03-17", next.Start())
	}
	if next.Prev() != w {
		t.Error("Next then Prev did not round-trip")
	}
	prev := w.Prev()
	if prev.Start() != "2024-03-03" {
		t.Errorf("Prev().Start() = %s, want 2024-03-03", prev.Start())
	}
}

func TestContains(t *testing.T) {
	w := Resolve(mustDate(t, "2024-03-10"))
	if !w.Contains("2024-03-10") || !w.Contains("2024-03-16") || !w.Contains("2024-03-13") {
		t.Error("window should contain its own days")
	}
	if w.Contains("2024-03-09") || w.Contains("2024-03-17") {
		t.Error("window should not contain neighboring days")
	}
}
