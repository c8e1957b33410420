package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/repository"
	"github.com/limbo/discipline/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyColumns = []string{"id", "habit_id", "record_date", "status"}

func TestCreateHistoryRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHistoryRepo(mock, time.UTC)
	habitID := uuid.New()
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO habit_history (id, habit_id, record_date, status) VALUES ($1, $2, $3::date, $4)`)
	ctx := context.Background()
	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(pgxmock.AnyArg(), habitID, "2024-03-04", "COMPLETED").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		rec := entity.HistoryRecord{HabitID: habitID, Date: day, Status: entity.StatusCompleted}
		inserted, err := repo.Create(ctx, &rec)
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NotEqual(t, uuid.Nil, rec.ID)
	})
	t.Run("day already recorded", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(pgxmock.AnyArg(), habitID, "2024-03-04", "MISSED").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		rec := entity.HistoryRecord{HabitID: habitID, Date: day, Status: entity.StatusMissed}
		inserted, err := repo.Create(ctx, &rec)
		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, uuid.Nil, rec.ID)
	})
	t.Run("unknown habit", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(pgxmock.AnyArg(), habitID, "2024-03-04", "MISSED").
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &entity.HistoryRecord{HabitID: habitID, Date: day, Status: entity.StatusMissed})
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(pgxmock.AnyArg(), habitID, "2024-03-04", "MISSED").
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &entity.HistoryRecord{HabitID: habitID, Date: day, Status: entity.StatusMissed})
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHistoryByDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	loc := time.FixedZone("UTC+3", 3*60*60)
	repo := repository.NewHistoryRepo(mock, loc)
	from := time.Date(2024, time.March, 4, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 6)
	query := regexp.QuoteMeta(`WHERE record_date >= $1::date AND record_date <= $2::date ORDER BY record_date, habit_id;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		id, habitID := uuid.New(), uuid.New()
		mock.ExpectQuery(query).
			WithArgs("2024-03-04", "2024-03-10").
			WillReturnRows(pgxmock.NewRows(historyColumns).
				AddRow(id, habitID, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "MISSED"))
		records, err := repo.GetByDateRange(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, id, records[0].ID)
		assert.Equal(t, entity.StatusMissed, records[0].Status)
		// the stored calendar day is kept, anchored in the repository zone
		assert.True(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, loc).Equal(records[0].Date))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("2024-03-04", "2024-03-10").
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByDateRange(ctx, from, to)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
}

func TestDeleteHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHistoryRepo(mock, time.UTC)
	habitID := uuid.New()
	ctx := context.Background()
	t.Run("by habit", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM habit_history WHERE habit_id = $1;`)).
			WithArgs(habitID).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		assert.NoError(t, repo.DeleteByHabit(ctx, habitID))
	})
	t.Run("clear", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM habit_history;`)).
			WillReturnResult(pgxmock.NewResult("DELETE", 10))
		assert.NoError(t, repo.Clear(ctx))
	})
	t.Run("clear db error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM habit_history;`)).
			WillReturnError(errors.New("db error"))
		assert.ErrorIs(t, repo.Clear(ctx), errorvalues.ErrStorageUnavailable)
	})
}
