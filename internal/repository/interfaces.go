package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/discipline/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/discipline/internal/repository HabitsRepositoryI,HistoryRepositoryI

type HabitsRepositoryI interface {
	// Creates new habit. Fails with ErrDuplicateName if the name is taken, ignoring case
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Searches habit by name, ignoring case
	GetByName(ctx context.Context, name string) (*entity.Habit, error)
	// Lists every habit ordered by reminder time and name
	GetAll(ctx context.Context) ([]*entity.Habit, error)
	// Rewrites all mutable fields of the habit with habit.ID
	Update(ctx context.Context, habit *entity.Habit) error
	// Sets the daily completion flag
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type HistoryRepositoryI interface {
	// Stores the record unless one already exists for the same habit and day.
	// Reports whether the record was inserted
	Create(ctx context.Context, record *entity.HistoryRecord) (bool, error)
	// Provides all records of a habit, oldest first
	GetByHabit(ctx context.Context, habitID uuid.UUID) ([]entity.HistoryRecord, error)
	// Provides records dated within [from, to], both days included
	GetByDateRange(ctx context.Context, from, to time.Time) ([]entity.HistoryRecord, error)
	// Removes every record of a habit
	DeleteByHabit(ctx context.Context, habitID uuid.UUID) error
	// Removes all records
	Clear(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

const dateLayout = "2006-01-02"

// dateKey is the storage form of a history day.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// dayIn re-anchors a stored calendar day to midnight in loc.
func dayIn(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
