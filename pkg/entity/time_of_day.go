package entity

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const timeOfDayLayout = "15:04"

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayFromMinutes is the inverse of Minutes, used by the stores.
func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= 24*60 {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes", ErrInvalidTimeOfDay, m)
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On returns the instant at this time of day on the date of d, in d's zone.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, d.Location())
}

// Of returns the time of day of an instant, dropping seconds.
func Of(ts time.Time) TimeOfDay {
	return TimeOfDay{Hour: ts.Hour(), Minute: ts.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeOfDay, data)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
