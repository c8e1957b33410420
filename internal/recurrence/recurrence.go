// Package recurrence resolves a habit's weekly reminder into concrete
// instants. Every function takes "now" explicitly and has no side effects.
package recurrence

import (
	"time"

	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

// NextFireInstant returns the earliest instant strictly after now that falls
// on one of days at the given time of day, in now's location.
// It fails with ErrNoScheduledDays when days is empty.
func NextFireInstant(now time.Time, at entity.TimeOfDay, days entity.Weekdays) (time.Time, error) {
	if days.IsEmpty() {
		return time.Time{}, errorvalues.ErrNoScheduledDays
	}
	if days.Contains(now.Weekday()) {
		if today := at.On(now); today.After(now) {
			return today, nil
		}
	}
	base := StartOfDay(now)
	for i := 1; i <= 7; i++ {
		day := base.AddDate(0, 0, i)
		if days.Contains(day.Weekday()) {
			return at.On(day), nil
		}
	}
	// Not reachable for a non-empty set; kept so a corrupt mask still
	// resolves to the first listed weekday.
	target := days.Days()[0]
	dist := (int(target) - int(now.Weekday()) + 7) % 7
	if dist == 0 {
		dist = 7
	}
	return at.On(base.AddDate(0, 0, dist)), nil
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsUpcoming reports whether the habit still has an occurrence ahead of now
// in the current Monday-first week: later today, or on a later weekday.
// A habit without days is neither upcoming nor past-due.
func IsUpcoming(h *entity.Habit, now time.Time) bool {
	if h.Days.IsEmpty() {
		return false
	}
	if h.Days.Contains(now.Weekday()) && h.ReminderTime.On(now).After(now) {
		return true
	}
	today := weekIndex(now.Weekday())
	for _, d := range h.Days.Days() {
		if weekIndex(d) > today {
			return true
		}
	}
	return false
}

// IsPastDue reports whether the habit was due earlier today and is not yet
// completed.
func IsPastDue(h *entity.Habit, now time.Time) bool {
	if h.Completed || !h.Days.Contains(now.Weekday()) {
		return false
	}
	return !h.ReminderTime.On(now).After(now)
}

// IsScheduledOn reports whether the habit is scheduled on the weekday of t.
func IsScheduledOn(h *entity.Habit, t time.Time) bool {
	return h.Days.Contains(t.Weekday())
}

// weekIndex maps Monday to 0 and Sunday to 6.
func weekIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
