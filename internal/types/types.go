package types

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ISODate is the canonical date layout used everywhere in habitual.
// Dates are compared as strings; the layout sorts lexicographically.
const ISODate = "2006-01-02"

// Habit represents a trackable item: either a recurring habit checked
// per calendar day, or a one-off reminder with a single done flag.
type Habit struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Category       Category `json:"category"`
	Kind           Kind     `json:"kind"`
	CompletedDates DateSet  `json:"completed_dates"`
	CreatedAt      string   `json:"created_at"`
	ArchivedAt     string   `json:"archived_at,omitempty"`
	ExcludedDates  DateSet  `json:"excluded_dates,omitempty"`
}

// Validate checks if the habit has valid field values
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if !h.Kind.IsValid() {
		return fmt.Errorf("invalid kind: %s", h.Kind)
	}
	if !h.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", h.Category)
	}
	if _, err := time.Parse(ISODate, h.CreatedAt); err != nil {
		return fmt.Errorf("invalid created_at %q: %w", h.CreatedAt, err)
	}
	if h.ArchivedAt != "" {
		if _, err := time.Parse(ISODate, h.ArchivedAt); err != nil {
			return fmt.Errorf("invalid archived_at %q: %w", h.ArchivedAt, err)
		}
	}
	for _, d := range h.ExcludedDates {
		if h.CompletedDates.Has(d) {
			return fmt.Errorf("date %s is both completed and excluded", d)
		}
	}
	return nil
}

// Done reports whether a reminder has been marked done. Only the first
// completed date is meaningful for reminders.
func (h *Habit) Done() bool {
	return len(h.CompletedDates) > 0
}

// Clone returns a deep copy of the habit
func (h *Habit) Clone() *Habit {
	c := *h
	c.CompletedDates = h.CompletedDates.Clone()
	c.ExcludedDates = h.ExcludedDates.Clone()
	return &c
}

// Kind distinguishes recurring habits from one-off reminders
type Kind string

const (
	KindHabit    Kind = "habit"
	KindReminder Kind = "reminder"
)

// IsValid checks if the kind value is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindHabit, KindReminder:
		return true
	}
	return false
}

// Normalize maps unknown or missing kinds to KindHabit so records
// written by older versions still load.
func (k Kind) Normalize() Kind {
	if !k.IsValid() {
		return KindHabit
	}
	return k
}

// Category labels a habit for display and insight grouping
type Category string

const (
	CategoryHealth       Category = "Health"
	CategoryProductivity Category = "Productivity"
	CategoryMindfulness  Category = "Mindfulness"
	CategoryLearning     Category = "Learning"
	CategoryFitness      Category = "Fitness"
	CategoryOther        Category = "Other"
)

// IsValid checks if the category value is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryProductivity, CategoryMindfulness,
		CategoryLearning, CategoryFitness, CategoryOther:
		return true
	}
	return false
}

// Categories lists every valid category in display order
func Categories() []Category {
	return []Category{
		CategoryHealth, CategoryProductivity, CategoryMindfulness,
		CategoryLearning, CategoryFitness, CategoryOther,
	}
}

// DateSet is an ordered set of ISO dates. It serializes as a plain
// JSON string array.
type DateSet []string

// Has reports whether the set contains date
func (s DateSet) Has(date string) bool {
	for _, d := range s {
		if d == date {
			return true
		}
	}
	return false
}

// Add returns a set containing date. The receiver is not modified.
func (s DateSet) Add(date string) DateSet {
	if s.Has(date) {
		return s.Clone()
	}
	next := append(s.Clone(), date)
	sort.Strings(next)
	return next
}

// Remove returns a set without date. The receiver is not modified.
func (s DateSet) Remove(date string) DateSet {
	next := make(DateSet, 0, len(s))
	for _, d := range s {
		if d != date {
			next = append(next, d)
		}
	}
	return next
}

// Toggle flips membership of date, returning the next set
func (s DateSet) Toggle(date string) DateSet {
	if s.Has(date) {
		return s.Remove(date)
	}
	return s.Add(date)
}

// Clone returns a copy of the set
func (s DateSet) Clone() DateSet {
	if s == nil {
		return nil
	}
	next := make(DateSet, len(s))
	copy(next, s)
	return next
}

// Latest returns the greatest date in the set, or "" when empty
func (s DateSet) Latest() string {
	latest := ""
	for _, d := range s {
		if d > latest {
			latest = d
		}
	}
	return latest
}

// Collection is the full ordered habit list. It is the single source
// of truth; derived views are always recomputed from it.
type Collection []*Habit

// Find returns the habit with the given id, or nil
func (c Collection) Find(id string) *Habit {
	for _, h := range c {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Clone returns a deep copy of the collection
func (c Collection) Clone() Collection {
	next := make(Collection, len(c))
	for i, h := range c {
		next[i] = h.Clone()
	}
	return next
}

// Validate checks every habit and id uniqueness across the collection
func (c Collection) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, h := range c {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit id: %s", h.ID)
		}
		seen[h.ID] = true
		if err := h.Validate(); err != nil {
			return fmt.Errorf("habit %s: %w", h.ID, err)
		}
	}
	return nil
}
