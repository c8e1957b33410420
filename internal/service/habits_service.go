package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/recurrence"
	"github.com/limbo/discipline/internal/repository"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/entity"
)

// HabitsService keeps stored habits and their pending alarms in step.
// Mutations of one habit must be serialised by the caller.
type HabitsService struct {
	repo      repository.HabitsRepositoryI
	history   repository.HistoryRepositoryI
	scheduler AlarmScheduler
	prompts   Prompter
	clock     clock.Clock
	logger    *slog.Logger
}

// NewHabitsService builds the service. prompts may be nil when nothing shows
// fired alarms.
func NewHabitsService(
	habitsRepo repository.HabitsRepositoryI,
	historyRepo repository.HistoryRepositoryI,
	scheduler AlarmScheduler,
	prompts Prompter,
	clk clock.Clock,
	logger *slog.Logger,
) *HabitsService {
	if habitsRepo == nil || historyRepo == nil || scheduler == nil || clk == nil {
		log.Fatal("on habits service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HabitsService{
		repo:      habitsRepo,
		history:   historyRepo,
		scheduler: scheduler,
		prompts:   prompts,
		clock:     clk,
		logger:    logger.With(slog.String("component", "habits_service")),
	}
}

// CreateHabit stores a new habit and installs its first alarm. If only the
// alarm fails, the stored habit is returned together with an error wrapping
// ErrAlarmNotScheduled.
func (hs *HabitsService) CreateHabit(ctx context.Context, req *HabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := req.toHabit()
	if err := hs.ensureNameFree(ctx, h.Name, uuid.Nil); err != nil {
		return nil, err
	}
	id, err := hs.repo.Create(ctx, h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDuplicateName) {
			return nil, err
		}
		return nil, errors.Join(errors.New("habits repository error"), err)
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.Join(errors.New("habits repository error"), err)
	}
	if habit.Days.IsEmpty() {
		return habit, nil
	}
	return habit, hs.schedule(habit)
}

// UpdateHabit rewrites the habit's configuration and replaces its alarm with
// one computed from the new values. Clearing all days leaves no alarm.
func (hs *HabitsService) UpdateHabit(ctx context.Context, id uuid.UUID, req *HabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	current, err := hs.getHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	h := req.toHabit()
	if err = hs.ensureNameFree(ctx, h.Name, id); err != nil {
		return nil, err
	}
	h.ID = id
	h.Completed = current.Completed
	h.CreatedAt = current.CreatedAt
	if err = hs.repo.Update(ctx, h); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) || errors.Is(err, errorvalues.ErrDuplicateName) {
			return nil, err
		}
		return nil, errors.Join(errors.New("habits repository error"), err)
	}
	updated, err := hs.getHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = hs.scheduler.Cancel(id); err != nil {
		hs.logger.Warn("cancelling alarm before reschedule failed",
			slog.String("habit_id", id.String()),
			slog.String("error", err.Error()),
		)
		return updated, errors.Join(errorvalues.ErrAlarmNotScheduled, err)
	}
	return updated, hs.schedule(updated)
}

// DeleteHabit cancels the habit's alarms and closes its open prompt, then
// removes its history and the habit itself.
func (hs *HabitsService) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	if _, err := hs.getHabit(ctx, id); err != nil {
		return err
	}
	if err := hs.scheduler.Cancel(id); err != nil {
		hs.logger.Warn("cancelling alarm of deleted habit failed",
			slog.String("habit_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
	if err := hs.scheduler.CancelSnooze(id); err != nil {
		hs.logger.Warn("cancelling snooze of deleted habit failed",
			slog.String("habit_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
	if hs.prompts != nil {
		if _, ok := hs.prompts.Take(id); ok {
			hs.logger.Info("closed prompt of deleted habit", slog.String("habit_id", id.String()))
		}
	}
	if err := hs.history.DeleteByHabit(ctx, id); err != nil {
		return errors.Join(errors.New("history repository error"), err)
	}
	if err := hs.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.Join(errors.New("habits repository error"), err)
	}
	return nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, id uuid.UUID) (*HabitOverview, error) {
	h, err := hs.getHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	return hs.overview(h, hs.clock.Now()), nil
}

func (hs *HabitsService) ListHabits(ctx context.Context) ([]*HabitOverview, error) {
	habits, err := hs.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.Join(errors.New("habits repository error"), err)
	}
	now := hs.clock.Now()
	result := make([]*HabitOverview, 0, len(habits))
	for _, h := range habits {
		result = append(result, hs.overview(h, now))
	}
	return result, nil
}

// CompleteHabit sets the daily completion flag. History is not written here;
// the rollover records the day.
func (hs *HabitsService) CompleteHabit(ctx context.Context, id uuid.UUID, completed bool) error {
	if err := hs.repo.SetCompleted(ctx, id, completed); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.Join(errors.New("habits repository error"), err)
	}
	return nil
}

// DismissForToday records today as missed and marks the habit completed so it
// leaves the lists of habits that still need attention.
func (hs *HabitsService) DismissForToday(ctx context.Context, id uuid.UUID) error {
	if _, err := hs.getHabit(ctx, id); err != nil {
		return err
	}
	rec := &entity.HistoryRecord{
		HabitID: id,
		Date:    recurrence.StartOfDay(hs.clock.Now()),
		Status:  entity.StatusMissed,
	}
	inserted, err := hs.history.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.Join(errors.New("history repository error"), err)
	}
	if !inserted {
		hs.logger.Info("today already recorded, keeping existing record", slog.String("habit_id", id.String()))
	}
	return hs.CompleteHabit(ctx, id, true)
}

// IsUpcoming reports whether the habit still fires later this week.
func (hs *HabitsService) IsUpcoming(h *entity.Habit, now time.Time) bool {
	return recurrence.IsUpcoming(h, now)
}

func (hs *HabitsService) GetHabitHistory(ctx context.Context, id uuid.UUID) ([]entity.HistoryRecord, error) {
	if _, err := hs.getHabit(ctx, id); err != nil {
		return nil, err
	}
	records, err := hs.history.GetByHabit(ctx, id)
	if err != nil {
		return nil, errors.Join(errors.New("history repository error"), err)
	}
	return records, nil
}

func (hs *HabitsService) GetHistory(ctx context.Context, from, to time.Time) ([]entity.HistoryRecord, error) {
	records, err := hs.history.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, errors.Join(errors.New("history repository error"), err)
	}
	return records, nil
}

func (hs *HabitsService) ClearHistory(ctx context.Context) error {
	if err := hs.history.Clear(ctx); err != nil {
		return errors.Join(errors.New("history repository error"), err)
	}
	return nil
}

func (hs *HabitsService) getHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.Join(errors.New("habits repository error"), err)
	}
	return h, nil
}

// ensureNameFree fails with ErrDuplicateName when another habit than self
// already uses name, ignoring case.
func (hs *HabitsService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	other, err := hs.repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		return nil
	case err != nil:
		return errors.Join(errors.New("habits repository error"), err)
	case other.ID != self:
		return errorvalues.ErrDuplicateName
	}
	return nil
}

func (hs *HabitsService) schedule(h *entity.Habit) error {
	at, err := hs.scheduler.Schedule(h)
	if err != nil {
		hs.logger.Warn("habit saved without alarm",
			slog.String("habit_id", h.ID.String()),
			slog.String("error", err.Error()),
		)
		return errors.Join(errorvalues.ErrAlarmNotScheduled, err)
	}
	if !at.IsZero() {
		hs.logger.Info("alarm set", slog.String("habit_id", h.ID.String()), slog.Time("at", at))
	}
	return nil
}

func (hs *HabitsService) overview(h *entity.Habit, now time.Time) *HabitOverview {
	return &HabitOverview{
		Habit:    h,
		Upcoming: recurrence.IsUpcoming(h, now),
		PastDue:  recurrence.IsPastDue(h, now),
	}
}
