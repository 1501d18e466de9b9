package service

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/Vetrovv/course_scheduler/internal/repository"
	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"go.uber.org/zap"
)

// ScheduleService собирает полное расписание запуска курса: разворачивает
// недельный шаблон и сливает результат с legacy строками
type ScheduleService struct {
	instanceRepo *repository.CourseInstanceRepository
	patternRepo  *repository.PatternRepository
	lessonRepo   *repository.LessonRepository
	legacyRepo   *repository.LegacyScheduleRepository
	cache        *schedule.Cache
	logger       *zap.Logger
}

func NewScheduleService(
	instanceRepo *repository.CourseInstanceRepository,
	patternRepo *repository.PatternRepository,
	lessonRepo *repository.LessonRepository,
	legacyRepo *repository.LegacyScheduleRepository,
	cache *schedule.Cache,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		instanceRepo: instanceRepo,
		patternRepo:  patternRepo,
		lessonRepo:   lessonRepo,
		legacyRepo:   legacyRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetCombinedSchedule возвращает объединённое расписание запуска курса,
// отсортированное по времени начала. Сгенерированные занятия пересчитываются
// при каждом чтении и кэшируются до ближайшей инвалидации.
func (s *ScheduleService) GetCombinedSchedule(ctx context.Context, courseInstanceID int64) ([]*model.LessonOccurrence, error) {
	if cached, ok := s.cache.Get(courseInstanceID); ok {
		return cached, nil
	}

	instance, err := s.instanceRepo.GetByID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get course instance: %w", err)
	}

	if instance == nil {
		return nil, fmt.Errorf("course instance not found")
	}

	pattern, err := s.patternRepo.GetByCourseInstanceID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get pattern: %w", err)
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, instance.CourseID)
	if err != nil {
		return nil, fmt.Errorf("get lessons: %w", err)
	}

	generated := schedule.Expand(pattern, lessons, instance.StartDate, instance.EndDate)

	legacyRows, err := s.legacyRepo.GetByCourseInstanceID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get legacy schedule rows: %w", err)
	}

	legacy := make([]*model.LessonOccurrence, 0, len(legacyRows))
	for _, row := range legacyRows {
		legacy = append(legacy, &model.LessonOccurrence{
			ID:               fmt.Sprintf("legacy-%d", row.ID),
			CourseInstanceID: row.CourseInstanceID,
			LessonID:         row.LessonID,
			LessonNumber:     row.LessonNumber,
			LessonTitle:      row.LessonTitle,
			ScheduledStart:   row.ScheduledStart,
			ScheduledEnd:     row.ScheduledEnd,
			Source:           model.OccurrenceSourceLegacy,
		})
	}

	combined := schedule.Combine(legacy, generated)
	s.cache.Put(courseInstanceID, combined)

	s.logger.Debug("Combined schedule built",
		zap.Int64("course_instance_id", courseInstanceID),
		zap.Int("generated", len(generated)),
		zap.Int("legacy", len(legacy)),
	)

	return combined, nil
}

// SetPattern заменяет недельный шаблон запуска курса и сбрасывает кэш
func (s *ScheduleService) SetPattern(ctx context.Context, courseInstanceID int64, pattern *model.RecurrencePattern) error {
	instance, err := s.instanceRepo.GetByID(ctx, courseInstanceID)
	if err != nil {
		return fmt.Errorf("get course instance: %w", err)
	}

	if instance == nil {
		return fmt.Errorf("course instance not found")
	}

	pattern.CourseInstanceID = courseInstanceID
	if err := s.patternRepo.ReplaceForCourseInstance(ctx, courseInstanceID, pattern); err != nil {
		return fmt.Errorf("replace pattern: %w", err)
	}

	s.cache.Invalidate(courseInstanceID)

	return nil
}

// InvalidateSchedule сбрасывает кэш расписания одного запуска курса
func (s *ScheduleService) InvalidateSchedule(courseInstanceID int64) {
	s.cache.Invalidate(courseInstanceID)
}
