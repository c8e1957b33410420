package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/discipline/internal/alarm"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	repomocks "github.com/limbo/discipline/internal/repository/mocks"
	"github.com/limbo/discipline/internal/service"
	"github.com/limbo/discipline/internal/service/mocks"
	"github.com/limbo/discipline/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreAlarms(t *testing.T) {
	ctx := context.Background()
	t.Run("skips completed and dayless habits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		habits := repomocks.NewMockHabitsRepositoryI(ctrl)
		scheduler := mocks.NewMockAlarmScheduler(ctrl)
		active := storedHabit("Run", time.Monday)
		broken := storedHabit("Read", time.Tuesday)
		completed := storedHabit("Swim", time.Monday)
		completed.Completed = true
		dayless := storedHabit("Someday")

		habits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Habit{active, broken, completed, dayless}, nil)
		scheduler.EXPECT().Schedule(active).Return(mondayMorning.Add(time.Hour), nil)
		scheduler.EXPECT().Schedule(broken).Return(time.Time{}, errors.New("platform gone"))

		rs := service.NewRecoveryService(habits, scheduler, nil)
		restored, err := rs.RestoreAlarms(ctx)
		assert.Equal(t, 1, restored)
		assert.ErrorContains(t, err, broken.ID.String())
	})
	t.Run("listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		habits := repomocks.NewMockHabitsRepositoryI(ctrl)
		habits.EXPECT().GetAll(gomock.Any()).Return(nil, errorvalues.ErrStorageUnavailable)
		rs := service.NewRecoveryService(habits, mocks.NewMockAlarmScheduler(ctrl), nil)
		_, err := rs.RestoreAlarms(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
}

func TestRestoreAlarmsAfterRestart(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()
	run, err := st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Run", ReminderTime: "07:00", Days: []string{"mon"}})
	require.NoError(t, err)
	_, err = st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Read", ReminderTime: "21:00", Days: []string{"fri"}})
	require.NoError(t, err)
	done, err := st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Swim", ReminderTime: "18:00", Days: []string{"mon"}})
	require.NoError(t, err)
	require.NoError(t, st.service.CompleteHabit(ctx, done.ID, true))

	// a fresh engine has lost every pending alarm
	engine := alarm.NewEngine(alarm.EngineOptions{Clock: st.clock, ExactAllowed: true})
	rs := service.NewRecoveryService(st.habits, alarm.NewScheduler(engine, st.clock, 0, nil), nil)
	for range 2 {
		restored, err := rs.RestoreAlarms(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, restored)
		assert.Equal(t, 2, engine.Len())
	}
	a, ok := engine.Pending(alarm.RequestKey(run.ID))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC), a.At)
	_, ok = engine.Pending(alarm.RequestKey(done.ID))
	assert.False(t, ok)
}
