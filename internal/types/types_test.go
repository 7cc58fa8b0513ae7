package types

import "testing"

func TestHabitValidate(t *testing.T) {
	valid := Habit{
		ID:        "h-1",
		Title:     "Morning run",
		Category:  CategoryFitness,
		Kind:      KindHabit,
		CreatedAt: "2024-03-10",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid habit failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(h *Habit)
	}{
		{"empty title", func(h *Habit) { h.Title = "   " }},
		{"bad kind", func(h *Habit) { h.Kind = "chore" }},
		{"bad category", func(h *Habit) { h.Category = "Chores" }},
		{"bad created_at", func(h *Habit) { h.CreatedAt = "03/10/2024" }},
		{"bad archived_at", func(h *Habit) { h.ArchivedAt = "soon" }},
		{"completed and excluded overlap", func(h *Habit) {
			h.CompletedDates = DateSet{"2024-03-11"}
			h.ExcludedDates = DateSet{"2024-03-11"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := valid
			tt.mutate(&h)
			if err := h.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestKindNormalize(t *testing.T) {
	if got := Kind("").Normalize(); got != KindHabit {
		t.Errorf("empty kind should normalize to habit, got %s", got)
	}
	if got := Kind("todo").Normalize(); got != KindHabit {
		t.Errorf("unknown kind should normalize to habit, got %s", got)
	}
	if got := KindReminder.Normalize(); got != KindReminder {
		t.Errorf("reminder should survive normalization, got %s", got)
	}
}

func TestDateSetOperations(t *testing.T) {
	var s DateSet

	s = s.Add("2024-03-12")
	s = s.Add("2024-03-10")
	s = s.Add("2024-03-12") // duplicate add is a no-op
	if len(s) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(s))
	}
	// Adds keep the set sorted
	if s[0] != "2024-03-10" || s[1] != "2024-03-12" {
		t.Errorf("set not sorted: %v", s)
	}

	if !s.Has("2024-03-10") {
		t.Error("expected membership for 2024-03-10")
	}
	if s.Has("2024-03-11") {
		t.Error("unexpected membership for 2024-03-11")
	}

	s = s.Toggle("2024-03-10")
	if s.Has("2024-03-10") {
		t.Error("toggle should have removed 2024-03-10")
	}
	s = s.Toggle("2024-03-10")
	if !s.Has("2024-03-10") {
		t.Error("toggle should have re-added 2024-03-10")
	}

	if got := s.Latest(); got != "2024-03-12" {
		t.Errorf("Latest = %s, want 2024-03-12", got)
	}
	if got := (DateSet{}).Latest(); got != "" {
		t.Errorf("Latest of empty set = %q, want empty", got)
	}
}

func TestDateSetImmutability(t *testing.T) {
	orig := DateSet{"2024-03-10"}
	_ = orig.Add("2024-03-11")
	_ = orig.Remove("2024-03-10")
	if len(orig) != 1 || orig[0] != "2024-03-10" {
		t.Errorf("receiver was mutated: %v", orig)
	}
}

func TestCollectionValidateRejectsDuplicateIDs(t *testing.T) {
	c := Collection{
		{ID: "h-1", Title: "Read", Category: CategoryLearning, Kind: KindHabit, CreatedAt: "2024-03-10"},
		{ID: "h-1", Title: "Run", Category: CategoryFitness, Kind: KindHabit, CreatedAt: "2024-03-10"},
	}
	if err := c.Validate(); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestCollectionCloneIsDeep(t *testing.T) {
	c := Collection{
		{ID: "h-1", Title: "Read", Category: CategoryLearning, Kind: KindHabit,
			CreatedAt: "2024-03-10", CompletedDates: DateSet{"2024-03-11"}},
	}
	clone := c.Clone()
	clone[0].CompletedDates = clone[0].CompletedDates.Add("2024-03-12")
	clone[0].Title = "Write"

	if len(c[0].CompletedDates) != 1 {
		t.Error("clone shares completed dates with original")
	}
	if c[0].Title != "Read" {
		t.Error("clone shares habit struct with original")
	}
}
