package repository

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LegacyScheduleRepository читает явно сохранённые строки расписания
// из старого механизма. Записью управляет отдельный CRUD, здесь только чтение.
type LegacyScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewLegacyScheduleRepository(pool *pgxpool.Pool) *LegacyScheduleRepository {
	return &LegacyScheduleRepository{pool: pool}
}

// GetByCourseInstanceID получает legacy строки расписания запуска курса
func (r *LegacyScheduleRepository) GetByCourseInstanceID(ctx context.Context, courseInstanceID int64) ([]*model.LegacyScheduleRow, error) {
	query := `
		SELECT s.id, s.course_instance_id, s.lesson_id, s.lesson_number, l.title, s.scheduled_start, s.scheduled_end, s.created_at
		FROM legacy_schedule_rows s
		JOIN lessons l ON l.id = s.lesson_id
		WHERE s.course_instance_id = $1
		ORDER BY s.scheduled_start
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get legacy schedule rows: %w", err)
	}
	defer rows.Close()

	var result []*model.LegacyScheduleRow
	for rows.Next() {
		row := &model.LegacyScheduleRow{}
		err := rows.Scan(
			&row.ID,
			&row.CourseInstanceID,
			&row.LessonID,
			&row.LessonNumber,
			&row.LessonTitle,
			&row.ScheduledStart,
			&row.ScheduledEnd,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan legacy schedule row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}
