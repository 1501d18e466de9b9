package repository

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

// GetByCourseID получает упорядоченный список уроков курса
func (r *LessonRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*model.Lesson, error) {
	query := `
		SELECT id, course_id, position, title, created_at
		FROM lessons
		WHERE course_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("get lessons by course: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		lesson := &model.Lesson{}
		err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Position,
			&lesson.Title,
			&lesson.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}
