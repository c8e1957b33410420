package alarm

import (
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/recurrence"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/entity"
)

const (
	DefaultSnoozeDuration = 5 * time.Minute
	SnoozeSuffix          = "_snooze"
	keyPrefix             = "habit:"
)

// RequestKey is the platform key of a habit's regular alarm.
func RequestKey(habitID uuid.UUID) string {
	return keyPrefix + habitID.String()
}

// SnoozeRequestKey is the platform key of a habit's snooze re-trigger.
func SnoozeRequestKey(habitID uuid.UUID) string {
	return RequestKey(habitID) + SnoozeSuffix
}

// Scheduler keeps at most one pending regular alarm per habit, always at the
// habit's next fire instant, plus an independent one-shot snooze alarm.
// Calls for the same habit must not run concurrently.
type Scheduler struct {
	platform  Platform
	clock     clock.Clock
	snoozeFor time.Duration
	logger    *slog.Logger
}

func NewScheduler(platform Platform, clk clock.Clock, snoozeFor time.Duration, logger *slog.Logger) *Scheduler {
	if platform == nil || clk == nil {
		log.Fatal("alarm scheduler: provided nil platform or clock")
	}
	if snoozeFor <= 0 {
		snoozeFor = DefaultSnoozeDuration
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		platform:  platform,
		clock:     clk,
		snoozeFor: snoozeFor,
		logger:    logger.With(slog.String("component", "alarm_scheduler")),
	}
}

// Schedule replaces the habit's pending alarm with one at its next fire
// instant and returns that instant. A habit without days ends up with no
// alarm and a zero instant.
func (s *Scheduler) Schedule(h *entity.Habit) (time.Time, error) {
	if err := s.Cancel(h.ID); err != nil {
		return time.Time{}, err
	}
	if h.Days.IsEmpty() {
		s.logger.Info("habit has no scheduled days, alarm not set", slog.String("habit_id", h.ID.String()))
		return time.Time{}, nil
	}
	at, err := recurrence.NextFireInstant(s.clock.Now(), h.ReminderTime, h.Days)
	if err != nil {
		return time.Time{}, err
	}
	payload := Payload{
		HabitID:   h.ID,
		HabitName: h.Name,
		Vibration: h.Vibration,
		Snooze:    h.Snooze,
	}
	if err := s.register(RequestKey(h.ID), at, payload); err != nil {
		return time.Time{}, err
	}
	s.logger.Debug("alarm scheduled",
		slog.String("habit_id", h.ID.String()),
		slog.Time("at", at),
	)
	return at, nil
}

func (s *Scheduler) Cancel(habitID uuid.UUID) error {
	if err := s.platform.Cancel(RequestKey(habitID)); err != nil {
		return errors.New("cancelling alarm error: " + err.Error())
	}
	return nil
}

func (s *Scheduler) CancelSnooze(habitID uuid.UUID) error {
	if err := s.platform.Cancel(SnoozeRequestKey(habitID)); err != nil {
		return errors.New("cancelling snooze alarm error: " + err.Error())
	}
	return nil
}

// ScheduleSnooze installs a one-shot re-trigger after the snooze duration.
// Its payload disables snoozing so a snoozed alarm can't be snoozed again.
func (s *Scheduler) ScheduleSnooze(habitID uuid.UUID, habitName string, vibration bool) (time.Time, error) {
	at := s.clock.Now().Add(s.snoozeFor)
	payload := Payload{
		HabitID:   habitID,
		HabitName: habitName,
		Vibration: vibration,
		Snooze:    false,
		Snoozed:   true,
	}
	if err := s.register(SnoozeRequestKey(habitID), at, payload); err != nil {
		return time.Time{}, err
	}
	s.logger.Debug("snooze scheduled",
		slog.String("habit_id", habitID.String()),
		slog.Time("at", at),
	)
	return at, nil
}

// register prefers an exact alarm and falls back to an inexact one when the
// exact permission is missing or refused.
func (s *Scheduler) register(key string, at time.Time, p Payload) error {
	if s.platform.CanScheduleExact() {
		err := s.platform.RegisterExact(key, at, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errorvalues.ErrSchedulingDenied) {
			return errors.New("registering exact alarm error: " + err.Error())
		}
		s.logger.Warn("exact alarm denied, falling back to inexact", slog.String("key", key))
	}
	if err := s.platform.RegisterInexact(key, at, p); err != nil {
		return errors.New("registering inexact alarm error: " + err.Error())
	}
	return nil
}
