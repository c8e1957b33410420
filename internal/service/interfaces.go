package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/discipline/internal/alarm"
	"github.com/limbo/discipline/internal/prompt"
	"github.com/limbo/discipline/pkg/entity"
)

type HabitRequest struct {
	Name         string   `validate:"required,not_blank,max=100"`
	ReminderTime string   `validate:"required,time_of_day"`
	Days         []string `validate:"max=7,dive,weekday"`
	Vibration    bool
	Snooze       bool
}

// toHabit assumes the request passed validation.
func (req *HabitRequest) toHabit() *entity.Habit {
	tod, _ := entity.ParseTimeOfDay(req.ReminderTime)
	days, _ := entity.ParseWeekdays(req.Days)
	return &entity.Habit{
		Name:         strings.TrimSpace(req.Name),
		ReminderTime: tod,
		Days:         days,
		Vibration:    req.Vibration,
		Snooze:       req.Snooze,
	}
}

// HabitOverview is a habit with its state relative to now.
type HabitOverview struct {
	*entity.Habit
	Upcoming bool `json:"upcoming"`
	PastDue  bool `json:"past_due"`
}

type RolloverReport struct {
	Date     time.Time `json:"date"`
	Recorded int       `json:"recorded"`
	Skipped  int       `json:"skipped"`
	Reset    int       `json:"reset"`
}

// AlarmScheduler is implemented by alarm.Scheduler.
type AlarmScheduler interface {
	Schedule(h *entity.Habit) (time.Time, error)
	Cancel(habitID uuid.UUID) error
	CancelSnooze(habitID uuid.UUID) error
	ScheduleSnooze(habitID uuid.UUID, habitName string, vibration bool) (time.Time, error)
}

// Prompter shows fired alarms to the user and hands back their choice.
type Prompter interface {
	Show(p alarm.Payload, at time.Time) prompt.Prompt
	Get(habitID uuid.UUID) (prompt.Prompt, bool)
	Take(habitID uuid.UUID) (prompt.Prompt, bool)
	Active() []prompt.Prompt
}

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/discipline/internal/service AlarmScheduler,AlarmServiceI,HabitsServiceI,LockServiceI,Prompter

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, req *HabitRequest) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, id uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	GetHabit(ctx context.Context, id uuid.UUID) (*HabitOverview, error)
	ListHabits(ctx context.Context) ([]*HabitOverview, error)
	CompleteHabit(ctx context.Context, id uuid.UUID, completed bool) error
	DismissForToday(ctx context.Context, id uuid.UUID) error
	GetHabitHistory(ctx context.Context, id uuid.UUID) ([]entity.HistoryRecord, error)
	GetHistory(ctx context.Context, from, to time.Time) ([]entity.HistoryRecord, error)
	ClearHistory(ctx context.Context) error
}

type AlarmServiceI interface {
	HandleFired(ctx context.Context, a alarm.Alarm) error
	Snooze(ctx context.Context, habitID uuid.UUID) (time.Time, error)
	Dismiss(ctx context.Context, habitID uuid.UUID) error
	ActivePrompts() []prompt.Prompt
}

type LockServiceI interface {
	Enabled() bool
	Unlock(pin string) error
}
