package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// Weekdays is a set of days of the week stored as a bitmask, bit n set
// meaning time.Weekday(n) is included (Sunday is bit 0).
type Weekdays uint8

const AllWeekdays Weekdays = 0x7f

var dayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

var ErrInvalidWeekday = errors.New("invalid weekday")

func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w = w.With(d)
	}
	return w
}

func (w Weekdays) With(d time.Weekday) Weekdays {
	return w | 1<<uint(d%7)
}

func (w Weekdays) Contains(d time.Weekday) bool {
	return w&(1<<uint(d%7)) != 0
}

func (w Weekdays) IsEmpty() bool {
	return w&AllWeekdays == 0
}

// Count returns how many days are set.
func (w Weekdays) Count() int {
	var cnt int
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			cnt++
		}
	}
	return cnt
}

// Days lists the set days in weekday-number order.
func (w Weekdays) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (w Weekdays) Names() []string {
	names := make([]string, 0, 7)
	for _, d := range w.Days() {
		names = append(names, dayNames[d])
	}
	return names
}

func (w Weekdays) String() string {
	if w.IsEmpty() {
		return "never"
	}
	return strings.Join(w.Names(), ",")
}

// ParseWeekday accepts three-letter or full English day names, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dayNames {
		if s == name || s == strings.ToLower(time.Weekday(i).String()) {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func ParseWeekdays(names []string) (Weekdays, error) {
	var w Weekdays
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return 0, err
		}
		w = w.With(d)
	}
	return w, nil
}

func (w Weekdays) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(w.Names())
}

func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := sonic.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseWeekdays(names)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
