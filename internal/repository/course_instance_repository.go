package repository

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseInstanceRepository struct {
	pool *pgxpool.Pool
}

func NewCourseInstanceRepository(pool *pgxpool.Pool) *CourseInstanceRepository {
	return &CourseInstanceRepository{pool: pool}
}

// GetByID получает запуск курса по ID
func (r *CourseInstanceRepository) GetByID(ctx context.Context, id int64) (*model.CourseInstance, error) {
	query := `
		SELECT id, course_id, instructor_id, institution_id, start_date, end_date, hourly_rate, is_active, created_at, updated_at
		FROM course_instances
		WHERE id = $1
	`

	instance := &model.CourseInstance{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&instance.ID,
		&instance.CourseID,
		&instance.InstructorID,
		&instance.InstitutionID,
		&instance.StartDate,
		&instance.EndDate,
		&instance.HourlyRate,
		&instance.IsActive,
		&instance.CreatedAt,
		&instance.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get course instance by id: %w", err)
	}

	return instance, nil
}

// GetActive получает все активные запуски курсов
func (r *CourseInstanceRepository) GetActive(ctx context.Context) ([]*model.CourseInstance, error) {
	query := `
		SELECT id, course_id, instructor_id, institution_id, start_date, end_date, hourly_rate, is_active, created_at, updated_at
		FROM course_instances
		WHERE is_active = true
		ORDER BY start_date
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get active course instances: %w", err)
	}
	defer rows.Close()

	var instances []*model.CourseInstance
	for rows.Next() {
		instance := &model.CourseInstance{}
		err := rows.Scan(
			&instance.ID,
			&instance.CourseID,
			&instance.InstructorID,
			&instance.InstitutionID,
			&instance.StartDate,
			&instance.EndDate,
			&instance.HourlyRate,
			&instance.IsActive,
			&instance.CreatedAt,
			&instance.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course instance: %w", err)
		}
		instances = append(instances, instance)
	}

	return instances, nil
}
