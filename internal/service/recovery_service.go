package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/limbo/discipline/internal/repository"
)

// RecoveryService reinstalls alarms lost with a restart.
type RecoveryService struct {
	repo      repository.HabitsRepositoryI
	scheduler AlarmScheduler
	logger    *slog.Logger
}

func NewRecoveryService(habitsRepo repository.HabitsRepositoryI, scheduler AlarmScheduler, logger *slog.Logger) *RecoveryService {
	if habitsRepo == nil || scheduler == nil {
		log.Fatal("on recovery service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecoveryService{
		repo:      habitsRepo,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "recovery")),
	}
}

// RestoreAlarms schedules every habit that is not completed and has days.
// A failing habit doesn't stop the others; their errors are joined. Running
// it twice leaves the same alarms behind.
func (rs *RecoveryService) RestoreAlarms(ctx context.Context) (int, error) {
	habits, err := rs.repo.GetAll(ctx)
	if err != nil {
		return 0, errors.Join(errors.New("habits repository error"), err)
	}
	var (
		restored int
		errs     []error
	)
	for _, h := range habits {
		if h.Completed || h.Days.IsEmpty() {
			continue
		}
		if _, err := rs.scheduler.Schedule(h); err != nil {
			rs.logger.Warn("restoring alarm failed",
				slog.String("habit_id", h.ID.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, errors.New("habit "+h.ID.String()+": "+err.Error()))
			continue
		}
		restored++
	}
	rs.logger.Info("alarms restored", slog.Int("restored", restored), slog.Int("failed", len(errs)))
	return restored, errors.Join(errs...)
}
