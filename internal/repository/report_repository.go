package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository управляет отчётами о проведённых занятиях
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Create создаёт отчёт о проведённом занятии
func (r *ReportRepository) Create(ctx context.Context, report *model.LessonReport) error {
	query := `
		INSERT INTO lesson_reports (course_instance_id, lesson_id, lesson_date, topic, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		report.CourseInstanceID,
		report.LessonID,
		report.LessonDate,
		report.Topic,
		report.DurationMinutes,
	).Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lesson report: %w", err)
	}

	return nil
}

// GetByCourseInstanceID получает все отчёты запуска курса
func (r *ReportRepository) GetByCourseInstanceID(ctx context.Context, courseInstanceID int64) ([]*model.LessonReport, error) {
	query := `
		SELECT id, course_instance_id, lesson_id, lesson_date, topic, duration_minutes, created_at
		FROM lesson_reports
		WHERE course_instance_id = $1
		ORDER BY lesson_date
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get reports by course instance: %w", err)
	}
	defer rows.Close()

	var reports []*model.LessonReport
	for rows.Next() {
		report := &model.LessonReport{}
		err := rows.Scan(
			&report.ID,
			&report.CourseInstanceID,
			&report.LessonID,
			&report.LessonDate,
			&report.Topic,
			&report.DurationMinutes,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// GetReportedDates получает даты всех отчитанных занятий запуска курса.
// Вторая половина снимка занятости при переносе.
func (r *ReportRepository) GetReportedDates(ctx context.Context, courseInstanceID int64) ([]time.Time, error) {
	query := `
		SELECT lesson_date
		FROM lesson_reports
		WHERE course_instance_id = $1
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get reported dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan reported date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// GetSummary считает количество отчитанных занятий и суммарные минуты
// по запуску курса
func (r *ReportRepository) GetSummary(ctx context.Context, courseInstanceID int64) (reported int, totalMinutes int, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(duration_minutes), 0)
		FROM lesson_reports
		WHERE course_instance_id = $1
	`

	err = r.pool.QueryRow(ctx, query, courseInstanceID).Scan(&reported, &totalMinutes)
	if err != nil {
		return 0, 0, fmt.Errorf("get report summary: %w", err)
	}

	return reported, totalMinutes, nil
}
