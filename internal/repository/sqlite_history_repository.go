package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

type historyRow struct {
	ID         string `db:"id"`
	HabitID    string `db:"habit_id"`
	RecordDate string `db:"record_date"`
	Status     string `db:"status"`
}

// SQLiteHistoryRepository is the on-device history log.
type SQLiteHistoryRepository struct {
	db  *sqlx.DB
	loc *time.Location
}

func NewSQLiteHistoryRepo(db *sqlx.DB, loc *time.Location) *SQLiteHistoryRepository {
	if loc == nil {
		loc = time.Local
	}
	return &SQLiteHistoryRepository{db: db, loc: loc}
}

func (r *SQLiteHistoryRepository) Create(ctx context.Context, record *entity.HistoryRecord) (bool, error) {
	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_history (id, habit_id, record_date, status) VALUES (?, ?, ?, ?)
		ON CONFLICT (habit_id, record_date) DO NOTHING`,
		id.String(), record.HabitID.String(), dateKey(record.Date), string(record.Status),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errorvalues.ErrHabitNotFound
		}
		return false, storageErr("creating history record", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("reading affected rows", err)
	}
	if n == 0 {
		return false, nil
	}
	record.ID = id
	return true, nil
}

func (r *SQLiteHistoryRepository) GetByHabit(ctx context.Context, habitID uuid.UUID) ([]entity.HistoryRecord, error) {
	return r.query(ctx, "listing history of habit",
		`SELECT * FROM habit_history WHERE habit_id = ? ORDER BY record_date`,
		habitID.String(),
	)
}

func (r *SQLiteHistoryRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]entity.HistoryRecord, error) {
	return r.query(ctx, "listing history for period",
		`SELECT * FROM habit_history WHERE record_date >= ? AND record_date <= ? ORDER BY record_date, habit_id`,
		dateKey(from), dateKey(to),
	)
}

func (r *SQLiteHistoryRepository) DeleteByHabit(ctx context.Context, habitID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habit_history WHERE habit_id = ?`, habitID.String()); err != nil {
		return storageErr("deleting history of habit", err)
	}
	return nil
}

func (r *SQLiteHistoryRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habit_history`); err != nil {
		return storageErr("clearing history", err)
	}
	return nil
}

func (r *SQLiteHistoryRepository) query(ctx context.Context, op, query string, args ...any) ([]entity.HistoryRecord, error) {
	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr(op, err)
	}
	result := make([]entity.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, errors.New("invalid history id in store: " + err.Error())
		}
		habitID, err := uuid.Parse(row.HabitID)
		if err != nil {
			return nil, errors.New("invalid habit id in store: " + err.Error())
		}
		date, err := time.ParseInLocation(dateLayout, row.RecordDate, r.loc)
		if err != nil {
			return nil, errors.New("invalid history date in store: " + err.Error())
		}
		result = append(result, entity.HistoryRecord{
			ID:      id,
			HabitID: habitID,
			Date:    date,
			Status:  entity.HistoryStatus(row.Status),
		})
	}
	return result, nil
}
