package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/discipline/internal/alarm"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/prompt"
	"github.com/limbo/discipline/internal/repository"
	"github.com/limbo/discipline/pkg/clock"
)

// AlarmService reacts to fired alarms and to the user's answer to a prompt.
type AlarmService struct {
	habits    repository.HabitsRepositoryI
	scheduler AlarmScheduler
	prompts   Prompter
	clock     clock.Clock
	logger    *slog.Logger
}

func NewAlarmService(
	habitsRepo repository.HabitsRepositoryI,
	scheduler AlarmScheduler,
	prompts Prompter,
	clk clock.Clock,
	logger *slog.Logger,
) *AlarmService {
	if habitsRepo == nil || scheduler == nil || prompts == nil || clk == nil {
		log.Fatal("on alarm service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AlarmService{
		habits:    habitsRepo,
		scheduler: scheduler,
		prompts:   prompts,
		clock:     clk,
		logger:    logger.With(slog.String("component", "alarm_service")),
	}
}

// HandleFired shows the prompt carried by a fired alarm and, for a regular
// alarm, installs the habit's next occurrence. Alarms of deleted habits are
// dropped silently.
func (as *AlarmService) HandleFired(ctx context.Context, a alarm.Alarm) error {
	p := a.Payload
	h, err := as.habits.GetByID(ctx, p.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			as.logger.Debug("alarm fired for missing habit", slog.String("habit_id", p.HabitID.String()))
			return nil
		}
		// The payload is enough to prompt; the reschedule waits for recovery.
		as.prompts.Show(p, as.clock.Now())
		return errors.Join(errors.New("habits repository error"), err)
	}
	if !p.Snoozed {
		if _, err = as.scheduler.Schedule(h); err != nil {
			as.logger.Warn("scheduling next occurrence failed",
				slog.String("habit_id", h.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	if h.Completed {
		as.logger.Debug("habit already completed, prompt skipped", slog.String("habit_id", h.ID.String()))
		return nil
	}
	as.prompts.Show(p, as.clock.Now())
	as.logger.Info("prompt shown",
		slog.String("habit_id", h.ID.String()),
		slog.Bool("snoozed", p.Snoozed),
	)
	return nil
}

// Snooze closes the habit's prompt and re-triggers it after the snooze
// duration. The re-trigger itself can't be snoozed.
func (as *AlarmService) Snooze(ctx context.Context, habitID uuid.UUID) (time.Time, error) {
	pr, ok := as.prompts.Get(habitID)
	if !ok {
		return time.Time{}, errorvalues.ErrPromptNotFound
	}
	if !pr.CanSnooze {
		return time.Time{}, errorvalues.ErrSnoozeNotAllowed
	}
	as.prompts.Take(habitID)
	if _, err := as.habits.GetByID(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, errors.Join(errors.New("habits repository error"), err)
	}
	at, err := as.scheduler.ScheduleSnooze(habitID, pr.Payload.HabitName, pr.Payload.Vibration)
	if err != nil {
		return time.Time{}, err
	}
	return at, nil
}

// Dismiss closes the habit's prompt.
func (as *AlarmService) Dismiss(ctx context.Context, habitID uuid.UUID) error {
	if _, ok := as.prompts.Take(habitID); !ok {
		return errorvalues.ErrPromptNotFound
	}
	return nil
}

func (as *AlarmService) ActivePrompts() []prompt.Prompt {
	return as.prompts.Active()
}
