package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/Vetrovv/course_scheduler/internal/repository"
	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"go.uber.org/zap"
)

// CancellationService ведёт жизненный цикл отмены занятия:
// запись отмены -> подбор новой даты -> отметка о переносе.
// Отмена и перенос — два раздельных последовательных эффекта: неудавшийся
// перенос никогда не откатывает саму отмену.
type CancellationService struct {
	instanceRepo     *repository.CourseInstanceRepository
	patternRepo      *repository.PatternRepository
	cancellationRepo *repository.CancellationRepository
	reportRepo       *repository.ReportRepository
	blockedRepo      *repository.BlockedDateRepository
	cache            *schedule.Cache
	logger           *zap.Logger
}

func NewCancellationService(
	instanceRepo *repository.CourseInstanceRepository,
	patternRepo *repository.PatternRepository,
	cancellationRepo *repository.CancellationRepository,
	reportRepo *repository.ReportRepository,
	blockedRepo *repository.BlockedDateRepository,
	cache *schedule.Cache,
	logger *zap.Logger,
) *CancellationService {
	return &CancellationService{
		instanceRepo:     instanceRepo,
		patternRepo:      patternRepo,
		cancellationRepo: cancellationRepo,
		reportRepo:       reportRepo,
		blockedRepo:      blockedRepo,
		cache:            cache,
		logger:           logger,
	}
}

// CancelOccurrence отменяет занятие и пытается перенести его на ближайшую
// свободную дату. Возвращает запись отмены; IsRescheduled=false в ней —
// штатный исход "свободной даты нет", который вызывающий показывает
// пользователю, а не ошибка.
func (s *CancellationService) CancelOccurrence(ctx context.Context, courseInstanceID, lessonID int64, originalDate time.Time, reason string) (*model.CancellationRecord, error) {
	instance, err := s.instanceRepo.GetByID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get course instance: %w", err)
	}

	if instance == nil {
		return nil, fmt.Errorf("course instance not found")
	}

	// Сначала фиксируем сам факт отмены
	record := &model.CancellationRecord{
		CourseInstanceID:   courseInstanceID,
		LessonID:           lessonID,
		OriginalDate:       originalDate,
		CancellationReason: reason,
	}

	if err := s.cancellationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create cancellation: %w", err)
	}

	s.cache.Invalidate(courseInstanceID)

	pattern, err := s.patternRepo.GetByCourseInstanceID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get pattern: %w", err)
	}

	if !pattern.HasSchedule() {
		// Без шаблона переносить некуда, отмена остаётся без переноса
		s.logger.Info("Cancellation recorded without reschedule: no pattern",
			zap.Int64("cancellation_id", record.ID),
			zap.Int64("course_instance_id", courseInstanceID),
		)
		return record, nil
	}

	// Снимок занятости собирается заново непосредственно перед подбором даты
	occupied, err := s.buildOccupiedDates(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("build occupied dates: %w", err)
	}

	blocked, err := s.blockedRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get blocked dates: %w", err)
	}

	newDate, found := schedule.FindNextAvailableDate(pattern, originalDate, occupied, blocked, instance.EndDate)
	if !found {
		s.logger.Warn("No available date for reschedule",
			zap.Int64("cancellation_id", record.ID),
			zap.Int64("course_instance_id", courseInstanceID),
			zap.Time("original_date", originalDate),
		)
		return record, nil
	}

	err = s.cancellationRepo.MarkRescheduled(ctx, record.ID, newDate)
	if err != nil {
		if errors.Is(err, repository.ErrRescheduleDateTaken) {
			// Дату успел занять параллельный перенос, отмена остаётся без переноса
			s.logger.Warn("Reschedule date taken concurrently",
				zap.Int64("cancellation_id", record.ID),
				zap.Time("new_date", newDate),
			)
			return record, nil
		}
		return nil, fmt.Errorf("mark rescheduled: %w", err)
	}

	record.IsRescheduled = true
	record.RescheduledToDate = &newDate
	s.cache.Invalidate(courseInstanceID)

	s.logger.Info("Occurrence cancelled and rescheduled",
		zap.Int64("cancellation_id", record.ID),
		zap.Int64("course_instance_id", courseInstanceID),
		zap.Time("original_date", originalDate),
		zap.Time("new_date", newDate),
	)

	return record, nil
}

// GetCancellations возвращает все отмены запуска курса
func (s *CancellationService) GetCancellations(ctx context.Context, courseInstanceID int64) ([]*model.CancellationRecord, error) {
	return s.cancellationRepo.GetByCourseInstanceID(ctx, courseInstanceID)
}

// buildOccupiedDates собирает снимок занятых дат запуска курса:
// даты ранее отменённых занятий плюс даты отчитанных занятий
func (s *CancellationService) buildOccupiedDates(ctx context.Context, courseInstanceID int64) (map[string]bool, error) {
	cancelled, err := s.cancellationRepo.GetOriginalDates(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get cancelled dates: %w", err)
	}

	reported, err := s.reportRepo.GetReportedDates(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get reported dates: %w", err)
	}

	occupied := make(map[string]bool, len(cancelled)+len(reported))
	for _, date := range cancelled {
		occupied[schedule.DateKey(date)] = true
	}
	for _, date := range reported {
		occupied[schedule.DateKey(date)] = true
	}

	return occupied, nil
}
