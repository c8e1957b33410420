package entity

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ReminderTime TimeOfDay `json:"reminder_time"`
	Days         Weekdays  `json:"days"`
	Completed    bool      `json:"completed"`
	Vibration    bool      `json:"vibration"`
	Snooze       bool      `json:"snooze"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HistoryStatus string

const (
	StatusCompleted HistoryStatus = "COMPLETED"
	StatusMissed    HistoryStatus = "MISSED"
)

func (s HistoryStatus) IsValid() bool {
	return s == StatusCompleted || s == StatusMissed
}

// HistoryRecord is one day's outcome for a habit. Date is always the start of
// the day in the zone that was current when the record was made.
type HistoryRecord struct {
	ID      uuid.UUID     `json:"id"`
	HabitID uuid.UUID     `json:"habit_id"`
	Date    time.Time     `json:"date"`
	Status  HistoryStatus `json:"status"`
}
