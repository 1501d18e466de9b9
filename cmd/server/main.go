package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/app"
	"github.com/Vetrovv/course_scheduler/internal/config"
	"github.com/Vetrovv/course_scheduler/internal/repository"
	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"github.com/Vetrovv/course_scheduler/internal/service"
	"github.com/Vetrovv/course_scheduler/internal/transport/httpapi"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting course scheduler",
		zap.String("environment", cfg.Environment),
		zap.String("http_addr", cfg.HTTPAddr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	// Применяем миграции при старте
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории
	instanceRepo := repository.NewCourseInstanceRepository(pool)
	patternRepo := repository.NewPatternRepository(pool, logger)
	lessonRepo := repository.NewLessonRepository(pool)
	legacyRepo := repository.NewLegacyScheduleRepository(pool)
	blockedRepo := repository.NewBlockedDateRepository(pool)
	cancellationRepo := repository.NewCancellationRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool)

	// Кэш расписаний — явная зависимость, никаких синглтонов
	cache := schedule.NewCache()

	// Сервисы
	scheduleSvc := service.NewScheduleService(instanceRepo, patternRepo, lessonRepo, legacyRepo, cache, logger)
	cancellationSvc := service.NewCancellationService(instanceRepo, patternRepo, cancellationRepo, reportRepo, blockedRepo, cache, logger)
	reportSvc := service.NewReportService(instanceRepo, reportRepo, logger)
	blockedSvc := service.NewBlockedDateService(blockedRepo, cache, logger)

	// Фоновые задачи
	scheduler := app.NewScheduler(cache, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := httpapi.NewServer(&httpapi.Options{
		Address:         cfg.HTTPAddr,
		ScheduleSvc:     scheduleSvc,
		CancellationSvc: cancellationSvc,
		ReportSvc:       reportSvc,
		BlockedSvc:      blockedSvc,
		Logger:          logger,
	})

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Ждём сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("Failed to stop HTTP server", zap.Error(err))
	}
}
