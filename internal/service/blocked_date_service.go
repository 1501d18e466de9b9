package service

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/Vetrovv/course_scheduler/internal/repository"
	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"go.uber.org/zap"
)

// BlockedDateService управляет глобальным списком заблокированных дат.
// Любое изменение списка сбрасывает кэш расписаний целиком: заблокированные
// даты глобальны и влияют на переносы всех запусков.
type BlockedDateService struct {
	blockedRepo *repository.BlockedDateRepository
	cache       *schedule.Cache
	logger      *zap.Logger
}

func NewBlockedDateService(
	blockedRepo *repository.BlockedDateRepository,
	cache *schedule.Cache,
	logger *zap.Logger,
) *BlockedDateService {
	return &BlockedDateService{
		blockedRepo: blockedRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetBlockedDates возвращает все заблокированные даты
func (s *BlockedDateService) GetBlockedDates(ctx context.Context) ([]model.BlockedDate, error) {
	return s.blockedRepo.GetAll(ctx)
}

// AddBlockedDate создаёт запись о заблокированной дате или диапазоне
func (s *BlockedDateService) AddBlockedDate(ctx context.Context, b *model.BlockedDate) error {
	single := b.Date != nil
	ranged := b.RangeStart != nil && b.RangeEnd != nil

	if single == ranged {
		return fmt.Errorf("blocked date must be either a single date or a range")
	}

	if ranged && b.RangeEnd.Before(*b.RangeStart) {
		return fmt.Errorf("range end must not be before range start")
	}

	if err := s.blockedRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("create blocked date: %w", err)
	}

	s.cache.Clear()

	s.logger.Info("Blocked date added",
		zap.Int64("blocked_date_id", b.ID),
		zap.String("reason", b.Reason),
	)

	return nil
}

// DeleteBlockedDate удаляет запись о заблокированной дате
func (s *BlockedDateService) DeleteBlockedDate(ctx context.Context, id int64) error {
	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete blocked date: %w", err)
	}

	s.cache.Clear()

	s.logger.Info("Blocked date deleted",
		zap.Int64("blocked_date_id", id),
	)

	return nil
}
