package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

type habitRow struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	NameKey        string    `db:"name_key"`
	ReminderMinute int       `db:"reminder_minute"`
	Days           int       `db:"days"`
	Completed      bool      `db:"completed"`
	Vibration      bool      `db:"vibration"`
	Snooze         bool      `db:"snooze"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r habitRow) toEntity() (*entity.Habit, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, errors.New("invalid habit id in store: " + err.Error())
	}
	tod, err := entity.TimeOfDayFromMinutes(r.ReminderMinute)
	if err != nil {
		return nil, err
	}
	return &entity.Habit{
		ID:           id,
		Name:         r.Name,
		ReminderTime: tod,
		Days:         entity.Weekdays(r.Days),
		Completed:    r.Completed,
		Vibration:    r.Vibration,
		Snooze:       r.Snooze,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

// SQLiteHabitsRepository is the on-device habit store.
type SQLiteHabitsRepository struct {
	db *sqlx.DB
}

func NewSQLiteHabitsRepo(db *sqlx.DB) *SQLiteHabitsRepository {
	return &SQLiteHabitsRepository{db: db}
}

func (r *SQLiteHabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	id := habit.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, name_key, reminder_minute, days, completed, vibration, snooze, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), habit.Name, nameKey(habit.Name), habit.ReminderTime.Minutes(), int(habit.Days),
		habit.Completed, habit.Vibration, habit.Snooze, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, errorvalues.ErrDuplicateName
		}
		return uuid.Nil, storageErr("creating habit", err)
	}
	return id, nil
}

func (r *SQLiteHabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	return r.getOne(ctx, "getting habit by id", `SELECT * FROM habits WHERE id = ?`, id.String())
}

func (r *SQLiteHabitsRepository) GetByName(ctx context.Context, name string) (*entity.Habit, error) {
	return r.getOne(ctx, "getting habit by name", `SELECT * FROM habits WHERE name_key = ?`, nameKey(name))
}

func (r *SQLiteHabitsRepository) GetAll(ctx context.Context) ([]*entity.Habit, error) {
	var rows []habitRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM habits ORDER BY reminder_minute, name`); err != nil {
		return nil, storageErr("listing habits", err)
	}
	habits := make([]*entity.Habit, 0, len(rows))
	for _, row := range rows {
		h, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func (r *SQLiteHabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE habits SET
			name = ?, name_key = ?, reminder_minute = ?, days = ?, vibration = ?, snooze = ?, updated_at = ?
		WHERE id = ?`,
		habit.Name, nameKey(habit.Name), habit.ReminderTime.Minutes(), int(habit.Days), habit.Vibration, habit.Snooze,
		time.Now().UTC(), habit.ID.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrDuplicateName
		}
		return storageErr("updating habit", err)
	}
	return affectedOne(result)
}

func (r *SQLiteHabitsRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE habits SET completed = ?, updated_at = ? WHERE id = ?`,
		completed, time.Now().UTC(), id.String(),
	)
	if err != nil {
		return storageErr("setting habit completion", err)
	}
	return affectedOne(result)
}

func (r *SQLiteHabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id.String())
	if err != nil {
		return storageErr("deleting habit", err)
	}
	return affectedOne(result)
}

func (r *SQLiteHabitsRepository) getOne(ctx context.Context, op, query string, arg any) (*entity.Habit, error) {
	var row habitRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, storageErr(op, err)
	}
	return row.toEntity()
}

func affectedOne(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return storageErr("reading affected rows", err)
	}
	if rows == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
