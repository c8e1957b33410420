package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

const habitColumns = `id, name, reminder_minute, days, completed, vibration, snooze, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	id := habit.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := hr.conn.Exec(ctx, `INSERT INTO habits (id, name, reminder_minute, days, completed, vibration, snooze) 
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		id,
		habit.Name,
		habit.ReminderTime.Minutes(),
		int16(habit.Days),
		habit.Completed,
		habit.Vibration,
		habit.Snooze,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrDuplicateName
			}
		}
		return uuid.Nil, storageErr("creating habit db error", err)
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, storageErr("getting habit by id error", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) GetByName(ctx context.Context, name string) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE LOWER(name) = LOWER($1);`, name)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, storageErr("getting habit by name error", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) GetAll(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY reminder_minute, name;`)
	if err != nil {
		return nil, storageErr("getting habits error", err)
	}
	defer rows.Close()
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, storageErr("unmarshalling habit error", err)
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("unexpected error after scanning", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET name = $1, reminder_minute = $2, days = $3, vibration = $4, snooze = $5, 
		updated_at = NOW() WHERE id = $6;`,
		habit.Name, habit.ReminderTime.Minutes(), int16(habit.Days), habit.Vibration, habit.Snooze, habit.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrDuplicateName
		}
		return storageErr("error updating habit", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET completed = $1, updated_at = NOW() WHERE id = $2;`, completed, id)
	if err != nil {
		return storageErr("error setting habit completion", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return storageErr("error deleting habit", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var (
		h       entity.Habit
		minutes int16
		days    int16
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&h.ID, &h.Name, &minutes, &days, &h.Completed, &h.Vibration, &h.Snooze, &created, &updated); err != nil {
		return nil, err
	}
	tod, err := entity.TimeOfDayFromMinutes(int(minutes))
	if err != nil {
		return nil, err
	}
	h.ReminderTime = tod
	h.Days = entity.Weekdays(days)
	h.CreatedAt = created
	h.UpdatedAt = updated
	return &h, nil
}
