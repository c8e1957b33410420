package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/recurrence"
	"github.com/limbo/discipline/internal/repository"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/entity"
)

// RolloverService turns each habit's completion flag into a history record
// once a day and resets the flag.
type RolloverService struct {
	habits    repository.HabitsRepositoryI
	history   repository.HistoryRepositoryI
	scheduler AlarmScheduler
	clock     clock.Clock
	logger    *slog.Logger
}

// NewRolloverService accepts a nil scheduler; with one, habits whose flag is
// reset get their alarm reinstalled.
func NewRolloverService(
	habitsRepo repository.HabitsRepositoryI,
	historyRepo repository.HistoryRepositoryI,
	scheduler AlarmScheduler,
	clk clock.Clock,
	logger *slog.Logger,
) *RolloverService {
	if habitsRepo == nil || historyRepo == nil || clk == nil {
		log.Fatal("on rollover service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RolloverService{
		habits:    habitsRepo,
		history:   historyRepo,
		scheduler: scheduler,
		clock:     clk,
		logger:    logger.With(slog.String("component", "rollover")),
	}
}

// Run records today for every habit scheduled today: COMPLETED when its flag
// is set, MISSED otherwise. A day already recorded keeps its first record, so
// a retried run doesn't count twice. Any storage failure aborts the run with
// ErrRolloverFailed; the next trigger retries it.
func (rs *RolloverService) Run(ctx context.Context) (RolloverReport, error) {
	now := rs.clock.Now()
	report := RolloverReport{Date: recurrence.StartOfDay(now)}

	habits, err := rs.habits.GetAll(ctx)
	if err != nil {
		return report, errors.Join(errorvalues.ErrRolloverFailed, err)
	}
	for _, h := range habits {
		if !recurrence.IsScheduledOn(h, now) {
			continue
		}
		status := entity.StatusMissed
		if h.Completed {
			status = entity.StatusCompleted
		}
		inserted, err := rs.history.Create(ctx, &entity.HistoryRecord{
			HabitID: h.ID,
			Date:    report.Date,
			Status:  status,
		})
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			// deleted since GetAll
			continue
		case err != nil:
			return report, errors.Join(errorvalues.ErrRolloverFailed, err)
		case inserted:
			report.Recorded++
		default:
			report.Skipped++
		}
		if !h.Completed {
			continue
		}
		if err = rs.habits.SetCompleted(ctx, h.ID, false); err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				continue
			}
			return report, errors.Join(errorvalues.ErrRolloverFailed, err)
		}
		report.Reset++
		h.Completed = false
		rs.reschedule(h)
	}
	rs.logger.Info("rollover finished",
		slog.Time("date", report.Date),
		slog.Int("recorded", report.Recorded),
		slog.Int("skipped", report.Skipped),
		slog.Int("reset", report.Reset),
	)
	return report, nil
}

func (rs *RolloverService) reschedule(h *entity.Habit) {
	if rs.scheduler == nil {
		return
	}
	if _, err := rs.scheduler.Schedule(h); err != nil {
		rs.logger.Warn("rescheduling after rollover failed",
			slog.String("habit_id", h.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
