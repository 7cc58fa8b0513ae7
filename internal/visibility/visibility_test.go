package visibility

import (
	"testing"

	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/week"
)

func weekOf(t *testing.T, iso string) week.Window {
	t.Helper()
	w, err := week.ResolveISO(iso)
	if err != nil {
		t.Fatalf("bad week ref %s: %v", iso, err)
	}
	return w
}

func habit(id, createdAt, archivedAt string) *types.Habit {
	return &types.Habit{
		ID:         id,
		Title:      "h " + id,
		Category:   types.CategoryOther,
		Kind:       types.KindHabit,
		CreatedAt:  createdAt,
		ArchivedAt: archivedAt,
	}
}

func ids(hs []*types.Habit) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func TestCreatedAtGatesVisibility(t *testing.T) {
	c := types.Collection{habit("h-1", "2024-03-10", "")}

	// Week before creation: absent.
	if got := Visible(c, weekOf(t, "2024-03-03"), types.KindHabit); len(got) != 0 {
		t.Errorf("habit visible before creation: %v", ids(got))
	}
	// Creation week: present.
	if got := Visible(c, weekOf(t, "2024-03-10"), types.KindHabit); len(got) != 1 {
		t.Errorf("habit missing in creation week: %v", ids(got))
	}
	// Created mid-week is visible for the whole containing week.
	mid := types.Collection{habit("h-2", "2024-03-13", "")}
	if got := Visible(mid, weekOf(t, "2024-03-10"), types.KindHabit); len(got) != 1 {
		t.Errorf("mid-week creation missing from its own week: %v", ids(got))
	}
}

func TestArchivalComparesAgainstWeekStart(t *testing.T) {
	tests := []struct {
		name       string
		archivedAt string
		weekRef    string
		want       bool
	}{
		{"archived before week start", "2024-03-03", "2024-03-10", false},
		{"archived exactly at week start", "2024-03-10", "2024-03-10", false},
		{"archived mid-week stays visible that week", "2024-03-13", "2024-03-10", true},
		{"archived mid-week gone next week", "2024-03-13", "2024-03-17", false},
		{"never archived", "", "2024-03-10", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Collection{habit("h-1", "2024-01-01", tt.archivedAt)}
			got := Visible(c, weekOf(t, tt.weekRef), types.KindHabit)
			if (len(got) == 1) != tt.want {
				t.Errorf("visible = %v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestCreatedAndArchivedSameWeek(t *testing.T) {
	// Both gates are evaluated independently: a habit created and
	// archived within one week still shows for that week.
	c := types.Collection{habit("h-1", "2024-03-11", "2024-03-14")}
	if got := Visible(c, weekOf(t, "2024-03-10"), types.KindHabit); len(got) != 1 {
		t.Errorf("habit created+archived in week should be visible: %v", ids(got))
	}
	if got := Visible(c, weekOf(t, "2024-03-17"), types.KindHabit); len(got) != 0 {
		t.Errorf("archived habit should be gone the following week: %v", ids(got))
	}
}

func TestKindFiltering(t *testing.T) {
	c := types.Collection{
		habit("h-1", "2024-01-01", ""),
		{ID: "r-1", Title: "renew passport", Category: types.CategoryOther,
			Kind: types.KindReminder, CreatedAt: "2024-01-01"},
		// Unknown kind normalizes to habit for forward compatibility.
		{ID: "x-1", Title: "legacy", Category: types.CategoryOther,
			Kind: "", CreatedAt: "2024-01-01"},
	}
	w := weekOf(t, "2024-03-10")

	habits := ids(Visible(c, w, types.KindHabit))
	if len(habits) != 2 || habits[0] != "h-1" || habits[1] != "x-1" {
		t.Errorf("habit kind selection = %v", habits)
	}
	reminders := ids(Visible(c, w, types.KindReminder))
	if len(reminders) != 1 || reminders[0] != "r-1" {
		t.Errorf("reminder kind selection = %v", reminders)
	}
}

func TestRemindersRespectGating(t *testing.T) {
	c := types.Collection{
		{ID: "r-1", Title: "old", Category: types.CategoryOther,
			Kind: types.KindReminder, CreatedAt: "2024-01-01", ArchivedAt: "2024-03-10"},
		{ID: "r-2", Title: "future", Category: types.CategoryOther,
			Kind: types.KindReminder, CreatedAt: "2024-03-20"},
	}
	if got := Visible(c, weekOf(t, "2024-03-10"), types.KindReminder); len(got) != 0 {
		t.Errorf("gated reminders leaked through: %v", ids(got))
	}
}

func TestExclusionHidesSingleDay(t *testing.T) {
	h := habit("h-1", "2024-01-01", "")
	h.ExcludedDates = types.DateSet{"2024-03-13"}
	c := types.Collection{h}
	w := weekOf(t, "2024-03-10")

	for i, day := range w.Days {
		active := ActiveOn(c, w, day)
		wantActive := day.ISODate != "2024-03-13"
		if (len(active) == 1) != wantActive {
			t.Errorf("day %d (%s): active=%v, want %v", i, day.ISODate, len(active) == 1, wantActive)
		}
	}

	// Same habit, other weeks: exclusion has no effect.
	next := w.Next()
	for _, day := range next.Days {
		if len(ActiveOn(c, next, day)) != 1 {
			t.Errorf("exclusion leaked into %s", day.ISODate)
		}
	}
}
