package errorvalues

import "errors"

var (
	ErrHabitNotFound         = errors.New("habit doesn't exist")
	ErrDuplicateName         = errors.New("habit with such name already exists")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrMissingHabitReference = errors.New("referenced habit no longer exists")
	ErrRolloverFailed        = errors.New("daily rollover run failed")
	ErrValidation            = errors.New("validation error")
)

// Scheduling
var (
	ErrNoScheduledDays   = errors.New("habit has no scheduled days")
	ErrSchedulingDenied  = errors.New("exact alarm scheduling denied")
	ErrAlarmNotScheduled = errors.New("habit saved but its alarm couldn't be scheduled")
	ErrSnoozeNotAllowed  = errors.New("snooze isn't allowed for this alarm")
	ErrPromptNotFound    = errors.New("no active prompt for habit")
)

// App lock
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongPin     = errors.New("wrong pin")
	ErrLockDisabled = errors.New("app lock is disabled")
)
