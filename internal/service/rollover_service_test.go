package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/discipline/internal/alarm"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	repomocks "github.com/limbo/discipline/internal/repository/mocks"
	"github.com/limbo/discipline/internal/service"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolloverRecordsScheduledHabits(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()
	st.clock.Set(time.Date(2024, time.March, 4, 23, 55, 0, 0, time.UTC))

	done, err := st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Run", ReminderTime: "07:00", Days: []string{"mon"}})
	require.NoError(t, err)
	missed, err := st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Read", ReminderTime: "21:00", Days: []string{"mon", "tue"}})
	require.NoError(t, err)
	tuesday, err := st.service.CreateHabit(ctx, &service.HabitRequest{Name: "Swim", ReminderTime: "18:00", Days: []string{"tue"}})
	require.NoError(t, err)
	require.NoError(t, st.service.CompleteHabit(ctx, done.ID, true))
	require.NoError(t, st.service.CompleteHabit(ctx, tuesday.ID, true))

	rs := service.NewRolloverService(st.habits, st.history, st.schedule, st.clock, nil)
	report, err := rs.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), report.Date)
	assert.Equal(t, 2, report.Recorded)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 1, report.Reset)

	records, err := st.history.GetByHabit(ctx, done.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.StatusCompleted, records[0].Status)

	records, err = st.history.GetByHabit(ctx, missed.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.StatusMissed, records[0].Status)

	// not scheduled today: no record, flag untouched
	records, err = st.history.GetByHabit(ctx, tuesday.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
	h, err := st.habits.GetByID(ctx, tuesday.ID)
	require.NoError(t, err)
	assert.True(t, h.Completed)

	h, err = st.habits.GetByID(ctx, done.ID)
	require.NoError(t, err)
	assert.False(t, h.Completed)
	a, ok := st.engine.Pending(alarm.RequestKey(done.ID))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 11, 7, 0, 0, 0, time.UTC), a.At)

	t.Run("second run doesn't duplicate", func(t *testing.T) {
		report, err := rs.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Recorded)
		assert.Equal(t, 2, report.Skipped)
		assert.Equal(t, 0, report.Reset)

		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		all, err := st.history.GetByDateRange(ctx, from, to)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestRolloverFailures(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2024, time.March, 4, 23, 55, 0, 0, time.UTC))
	newRollover := func(t *testing.T) (*service.RolloverService, *repomocks.MockHabitsRepositoryI, *repomocks.MockHistoryRepositoryI) {
		ctrl := gomock.NewController(t)
		habits := repomocks.NewMockHabitsRepositoryI(ctrl)
		history := repomocks.NewMockHistoryRepositoryI(ctrl)
		return service.NewRolloverService(habits, history, nil, clk, nil), habits, history
	}
	monday := func(completed bool) *entity.Habit {
		return &entity.Habit{ID: uuid.New(), Name: "Run", Days: entity.NewWeekdays(time.Monday), Completed: completed}
	}

	t.Run("listing fails", func(t *testing.T) {
		rs, habits, _ := newRollover(t)
		habits.EXPECT().GetAll(gomock.Any()).Return(nil, errorvalues.ErrStorageUnavailable)
		_, err := rs.Run(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrRolloverFailed)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
	t.Run("insert fails", func(t *testing.T) {
		rs, habits, history := newRollover(t)
		habits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Habit{monday(true)}, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, errorvalues.ErrStorageUnavailable)
		_, err := rs.Run(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrRolloverFailed)
	})
	t.Run("reset fails", func(t *testing.T) {
		rs, habits, history := newRollover(t)
		h := monday(true)
		habits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Habit{h}, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
		habits.EXPECT().SetCompleted(gomock.Any(), h.ID, false).Return(errorvalues.ErrStorageUnavailable)
		report, err := rs.Run(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrRolloverFailed)
		assert.Equal(t, 1, report.Recorded)
	})
	t.Run("habit deleted mid-run", func(t *testing.T) {
		rs, habits, history := newRollover(t)
		gone, kept := monday(false), monday(true)
		habits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Habit{gone, kept}, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *entity.HistoryRecord) (bool, error) {
				if rec.HabitID == gone.ID {
					return false, errorvalues.ErrHabitNotFound
				}
				assert.Equal(t, entity.StatusCompleted, rec.Status)
				return true, nil
			}).Times(2)
		habits.EXPECT().SetCompleted(gomock.Any(), kept.ID, false).Return(nil)
		report, err := rs.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Recorded)
		assert.Equal(t, 1, report.Reset)
	})
}
