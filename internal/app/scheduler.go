package app

import (
	"context"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"go.uber.org/zap"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	cache    *schedule.Cache
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик фоновых задач
func NewScheduler(cache *schedule.Cache, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cache:    cache,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runCacheSweepTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runCacheSweepTask раз в сутки сбрасывает кэш расписаний.
// Заблокированные даты и отчёты меняются и мимо этого сервиса,
// поэтому собранные расписания не должны жить дольше суток.
func (s *Scheduler) runCacheSweepTask(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			entries := s.cache.Len()
			s.cache.Clear()
			s.logger.Info("Schedule cache cleared", zap.Int("entries", entries))
		case <-s.stopChan:
			s.logger.Info("Cache sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Cache sweep task cancelled")
			return
		}
	}
}
