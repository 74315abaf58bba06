package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/working-date-go/internal/config"
	appHTTP "github.com/cmlabs-hris/working-date-go/internal/handler/http"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/cron"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/database"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/holiday"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/logger"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/telemetry"
	"github.com/cmlabs-hris/working-date-go/internal/repository/postgresql"
	taskService "github.com/cmlabs-hris/working-date-go/internal/service/task"
	workingDateService "github.com/cmlabs-hris/working-date-go/internal/service/workingdate"
	"github.com/cmlabs-hris/working-date-go/migrations"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		ServiceName:  cfg.App.Name,
		Version:      cfg.App.Version,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		SampleRatio:  cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		log.Error("otel setup failed", "error", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	schedule, err := cfg.Schedule()
	if err != nil {
		return fmt.Errorf("build schedule: %w", err)
	}

	var readiness []appHTTP.ReadinessCheck

	// Holiday source: HTTP, optionally shared through Redis, cached in memory.
	var source holiday.Source = holiday.NewClient(cfg.Holidays.URL, cfg.Holidays.Timeout)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()

		source = holiday.NewRedisSource(rdb, source, cfg.Redis.HolidaysKey, cfg.Holidays.TTL, log)
		readiness = append(readiness, appHTTP.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info("holiday list shared through redis", "redis_addr", cfg.Redis.Addr)
	}
	holidayCache := holiday.NewCache(source, cfg.Holidays.TTL, holiday.WithLogger(log))
	readiness = append(readiness, appHTTP.ReadinessCheck{
		Name: "holidays",
		Check: func(ctx context.Context) error {
			_, err := holidayCache.Holidays(ctx)
			return err
		},
	})

	wdService := workingDateService.NewWorkingDateService(schedule, holidayCache)

	// Task API is only served when a database is configured.
	var taskHandler appHTTP.TaskHandler
	if cfg.Database.Enabled {
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}

		taskRepo := postgresql.NewTaskRepository(db)
		taskHandler = appHTTP.NewTaskHandler(taskService.NewTaskService(taskRepo))
		readiness = append(readiness, appHTTP.ReadinessCheck{Name: "database", Check: db.Ready})
	}

	scheduler := cron.NewScheduler(log)
	cron.NewHolidayJobs(holidayCache, cfg.Holidays.RefreshInterval, cfg.Holidays.Timeout).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         log,
			LogLevel:       logger.ParseLevel(cfg.App.LogLevel),
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		appHTTP.NewWorkingDateHandler(wdService),
		appHTTP.NewHealthHandler(2*time.Second, readiness...),
		taskHandler,
	)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           otelhttp.NewHandler(router, cfg.App.Name),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", srv.Addr, "tz", schedule.Location().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", "error", err)
	}
	log.Info("http server stopped")
	return nil
}
