// @title Habit-tracker API
// @description API for habit-tracker app "Discipline"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/discipline/internal/alarm"
	"github.com/limbo/discipline/internal/api"
	"github.com/limbo/discipline/internal/prompt"
	"github.com/limbo/discipline/internal/repository"
	"github.com/limbo/discipline/internal/service"
	"github.com/limbo/discipline/internal/worker"
	"github.com/limbo/discipline/pkg/cleanup"
	"github.com/limbo/discipline/pkg/clock"
	"github.com/limbo/discipline/pkg/config"
	"github.com/limbo/discipline/pkg/entity"
	jwtservice "github.com/limbo/discipline/pkg/jwt_service"
	"github.com/limbo/discipline/pkg/logger"
)

func init() {
	service.InitValidator()
}

type stores struct {
	habits  repository.HabitsRepositoryI
	history repository.HistoryRepositoryI
}

func main() {
	cfg := config.New()
	lg, err := logger.New(logger.Config{
		Level: cfg.GetString("LOG_LEVEL"),
		File:  cfg.GetString("LOG_FILE"),
	})
	if err != nil {
		log.Fatal("setting up logger error: ", err)
	}
	slog.SetDefault(lg)
	defer cleanup.CleanUp()

	loc := time.Local
	if tz := cfg.GetString("TIMEZONE"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			log.Fatal("loading timezone error: ", err)
		}
	}
	clk := clock.NewSystem(loc)
	rolloverAt, err := entity.ParseTimeOfDay(cfg.GetString("ROLLOVER_AT"))
	if err != nil {
		log.Fatal("parsing ROLLOVER_AT error: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, loc)
	if err != nil {
		lg.Error("opening storage error", slog.String("error", err.Error()))
		return
	}

	engine := alarm.NewEngine(alarm.EngineOptions{
		Clock:         clk,
		InexactWindow: cfg.GetDuration("INEXACT_WINDOW"),
		ExactAllowed:  cfg.GetBool("EXACT_ALARMS_ALLOWED"),
	})
	engine.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping alarm engine",
		F: func() error {
			engine.Stop()
			return nil
		},
	})
	scheduler := alarm.NewScheduler(engine, clk, cfg.GetDuration("SNOOZE_DURATION"), lg)
	inbox := prompt.NewInbox()

	habitsService := service.NewHabitsService(st.habits, st.history, scheduler, inbox, clk, lg)
	alarmService := service.NewAlarmService(st.habits, scheduler, inbox, clk, lg)
	recoveryService := service.NewRecoveryService(st.habits, scheduler, lg)
	rolloverService := service.NewRolloverService(st.habits, st.history, scheduler, clk, lg)

	// Pending alarms don't outlive the process.
	if _, err = recoveryService.RestoreAlarms(ctx); err != nil {
		lg.Warn("some alarms were not restored", slog.String("error", err.Error()))
	}

	go func() {
		for a := range engine.C() {
			if err := alarmService.HandleFired(context.Background(), a); err != nil {
				lg.Error("handling fired alarm error",
					slog.String("key", a.Key),
					slog.String("error", err.Error()),
				)
			}
		}
	}()

	rollover := worker.NewDaily("rollover", rolloverAt, func(ctx context.Context) error {
		_, err := rolloverService.Run(ctx)
		return err
	}, clk, lg)
	go rollover.Run(ctx)

	serv := api.New(&api.ServicesList{
		HabitsService: habitsService,
		AlarmService:  alarmService,
		LockService:   service.NewLockService(cfg.GetString("APP_PIN_HASH")),
		JwtService:    jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			lg.Error("server shutdown error", slog.String("error", err.Error()))
		}
	}()
	lg.Info("server starting", slog.String("address", cfg.GetString("API_ADDRESS")))
	if err = serv.Run(cfg.GetString("API_ADDRESS")); err != nil {
		lg.Error("server error", slog.String("error", err.Error()))
	}
}

func openStores(ctx context.Context, cfg *config.Config, loc *time.Location) (*stores, error) {
	switch cfg.GetString("STORAGE_DRIVER") {
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if err := repository.MigratePostgres(&dbCfg, cfg.GetString("MIGRATIONS_DIR")); err != nil {
			return nil, err
		}
		pool, err := repository.NewPgPool(ctx, &dbCfg)
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing postgres pool",
			F: func() error {
				pool.Close()
				return nil
			},
		})
		return &stores{
			habits:  repository.NewHabitsRepo(pool),
			history: repository.NewHistoryRepo(pool, loc),
		}, nil
	default:
		db, err := repository.NewSQLiteDB(cfg.GetString("SQLITE_PATH"))
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing sqlite db",
			F:    db.Close,
		})
		return &stores{
			habits:  repository.NewSQLiteHabitsRepo(db),
			history: repository.NewSQLiteHistoryRepo(db, loc),
		}, nil
	}
}
