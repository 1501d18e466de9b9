package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PatternRepository управляет недельными шаблонами расписания.
// Шаблон хранится построчно: одна строка на день недели, строки одного
// шаблона связаны общим group_id.
type PatternRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPatternRepository(pool *pgxpool.Pool, logger *zap.Logger) *PatternRepository {
	return &PatternRepository{
		pool:   pool,
		logger: logger,
	}
}

// GetByCourseInstanceID собирает шаблон запуска курса из построчного
// представления. Возвращает nil, если шаблон не задан.
func (r *PatternRepository) GetByCourseInstanceID(ctx context.Context, courseInstanceID int64) (*model.RecurrencePattern, error) {
	query := `
		SELECT weekday, start_time, end_time, first_lesson_date, total_lessons
		FROM course_schedule_patterns
		WHERE course_instance_id = $1
		ORDER BY weekday
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get pattern rows: %w", err)
	}
	defer rows.Close()

	pattern := &model.RecurrencePattern{
		CourseInstanceID: courseInstanceID,
		TimeSlots:        make(map[int]model.TimeSlot),
	}

	found := false
	for rows.Next() {
		var (
			weekday         int
			startTime       string
			endTime         string
			firstLessonDate *time.Time
			totalLessons    *int
		)

		err := rows.Scan(&weekday, &startTime, &endTime, &firstLessonDate, &totalLessons)
		if err != nil {
			return nil, fmt.Errorf("scan pattern row: %w", err)
		}

		found = true
		pattern.DaysOfWeek = append(pattern.DaysOfWeek, weekday)
		pattern.TimeSlots[weekday] = model.TimeSlot{
			StartTime:       startTime,
			EndTime:         endTime,
			FirstLessonDate: firstLessonDate,
		}
		if totalLessons != nil {
			pattern.TotalLessons = totalLessons
		}
	}

	if !found {
		return nil, nil
	}

	return pattern, nil
}

// ReplaceForCourseInstance заменяет шаблон запуска курса целиком.
// Старые строки удаляются, новые вставляются одной транзакцией с новым group_id.
func (r *PatternRepository) ReplaceForCourseInstance(ctx context.Context, courseInstanceID int64, pattern *model.RecurrencePattern) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin pattern replace: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM course_schedule_patterns WHERE course_instance_id = $1`, courseInstanceID)
	if err != nil {
		return fmt.Errorf("delete old pattern rows: %w", err)
	}

	groupID := uuid.New()
	insert := `
		INSERT INTO course_schedule_patterns (group_id, course_instance_id, weekday, start_time, end_time, first_lesson_date, total_lessons)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, weekday := range pattern.DaysOfWeek {
		slot, ok := pattern.TimeSlots[weekday]
		if !ok {
			continue
		}

		_, err = tx.Exec(ctx, insert,
			groupID,
			courseInstanceID,
			weekday,
			slot.StartTime,
			slot.EndTime,
			slot.FirstLessonDate,
			pattern.TotalLessons,
		)
		if err != nil {
			return fmt.Errorf("insert pattern row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit pattern replace: %w", err)
	}

	r.logger.Info("Pattern replaced",
		zap.Int64("course_instance_id", courseInstanceID),
		zap.String("group_id", groupID.String()),
		zap.Int("weekdays", len(pattern.DaysOfWeek)),
	)

	return nil
}
