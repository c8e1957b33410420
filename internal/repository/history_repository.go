package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

type HistoryRepository struct {
	conn PgConnection
	loc  *time.Location
}

// NewHistoryRepo returns a store whose record dates are anchored in loc.
func NewHistoryRepo(conn PgConnection, loc *time.Location) *HistoryRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for historyRepo: " + err.Error())
	}
	if loc == nil {
		loc = time.Local
	}
	return &HistoryRepository{
		conn: conn,
		loc:  loc,
	}
}

func (hr *HistoryRepository) Create(ctx context.Context, record *entity.HistoryRecord) (bool, error) {
	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	ct, err := hr.conn.Exec(
		ctx,
		`INSERT INTO habit_history (id, habit_id, record_date, status) VALUES ($1, $2, $3::date, $4) 
		ON CONFLICT (habit_id, record_date) DO NOTHING;`,
		id,
		record.HabitID,
		dateKey(record.Date),
		string(record.Status),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return false, errorvalues.ErrHabitNotFound
			}
		}
		return false, storageErr("creating history record error", err)
	}
	if ct.RowsAffected() == 0 {
		return false, nil
	}
	record.ID = id
	return true, nil
}

func (hr *HistoryRepository) GetByHabit(ctx context.Context, habitID uuid.UUID) ([]entity.HistoryRecord, error) {
	return hr.query(ctx, "getting history of habit error",
		`SELECT id, habit_id, record_date, status FROM habit_history WHERE habit_id = $1 ORDER BY record_date;`,
		habitID,
	)
}

func (hr *HistoryRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]entity.HistoryRecord, error) {
	return hr.query(ctx, "getting history for period error",
		`SELECT id, habit_id, record_date, status FROM habit_history 
		WHERE record_date >= $1::date AND record_date <= $2::date ORDER BY record_date, habit_id;`,
		dateKey(from),
		dateKey(to),
	)
}

func (hr *HistoryRepository) DeleteByHabit(ctx context.Context, habitID uuid.UUID) error {
	_, err := hr.conn.Exec(ctx, `DELETE FROM habit_history WHERE habit_id = $1;`, habitID)
	if err != nil {
		return storageErr("deleting history of habit error", err)
	}
	return nil
}

func (hr *HistoryRepository) Clear(ctx context.Context) error {
	_, err := hr.conn.Exec(ctx, `DELETE FROM habit_history;`)
	if err != nil {
		return storageErr("clearing history error", err)
	}
	return nil
}

func (hr *HistoryRepository) query(ctx context.Context, op, sql string, args ...any) ([]entity.HistoryRecord, error) {
	rows, err := hr.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()
	result := make([]entity.HistoryRecord, 0)
	for rows.Next() {
		var (
			rec    entity.HistoryRecord
			date   time.Time
			status string
		)
		if err = rows.Scan(&rec.ID, &rec.HabitID, &date, &status); err != nil {
			return nil, storageErr("history row parsing error", err)
		}
		rec.Date = dayIn(date, hr.loc)
		rec.Status = entity.HistoryStatus(status)
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("unexpected history rows error", err)
	}
	return result, nil
}
