package alarm

import (
	"time"

	"github.com/google/uuid"
)

// Payload is everything a fired alarm needs to render its prompt without
// touching storage.
type Payload struct {
	HabitID   uuid.UUID `json:"habit_id"`
	HabitName string    `json:"habit_name"`
	Vibration bool      `json:"vibration"`
	Snooze    bool      `json:"snooze"`
	// Snoozed marks the one-shot re-trigger installed by a snooze.
	Snoozed bool `json:"snoozed"`
}

// Alarm is a pending or fired one-shot wake request.
type Alarm struct {
	Key     string    `json:"key"`
	At      time.Time `json:"at"`
	Exact   bool      `json:"exact"`
	Payload Payload   `json:"payload"`
}

// Platform is the wake-alarm registry of the host. Registering a key that is
// already pending replaces it.
type Platform interface {
	// Runtime permission predicate for exact alarms.
	CanScheduleExact() bool
	// Installs an alarm firing exactly at at. Returns ErrSchedulingDenied
	// when exact alarms are not permitted.
	RegisterExact(key string, at time.Time, p Payload) error
	// Installs a best-effort alarm firing no earlier than at.
	RegisterInexact(key string, at time.Time, p Payload) error
	// Removes the pending alarm for key, if any.
	Cancel(key string) error
}
