// Package worker runs jobs at a fixed local time of day.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/limbo/discipline/internal/recurrence"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/entity"
)

type Job func(ctx context.Context) error

// Daily calls its job once per day at a local time of day. A failed run is
// logged and retried at the next trigger.
type Daily struct {
	name   string
	at     entity.TimeOfDay
	job    Job
	clock  clock.Clock
	after  func(time.Duration) <-chan time.Time
	logger *slog.Logger
}

func NewDaily(name string, at entity.TimeOfDay, job Job, clk clock.Clock, logger *slog.Logger) *Daily {
	if clk == nil {
		clk = clock.NewSystem(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Daily{
		name:   name,
		at:     at,
		job:    job,
		clock:  clk,
		after:  time.After,
		logger: logger.With(slog.String("worker", name)),
	}
}

// Next returns the next trigger strictly after now.
func (d *Daily) Next(now time.Time) time.Time {
	next, _ := recurrence.NextFireInstant(now, d.at, entity.AllWeekdays)
	return next
}

// Run blocks until ctx is done. Each trigger is computed from the later of
// the previous trigger and now, so a wall clock running slightly behind the
// timer can't land on the same trigger twice.
func (d *Daily) Run(ctx context.Context) {
	next := d.Next(d.clock.Now())
	for {
		d.logger.Debug("next run scheduled", slog.Time("at", next))
		select {
		case <-ctx.Done():
			return
		case <-d.after(next.Sub(d.clock.Now())):
		}
		d.RunOnce(ctx)
		base := next
		if now := d.clock.Now(); now.After(base) {
			base = now
		}
		next = d.Next(base)
	}
}

// RunOnce calls the job right away.
func (d *Daily) RunOnce(ctx context.Context) {
	start := time.Now()
	if err := d.job(ctx); err != nil {
		d.logger.Error("run failed", slog.String("error", err.Error()))
		return
	}
	d.logger.Info("run finished", slog.Duration("took", time.Since(start)))
}
