package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrRescheduleDateTaken возвращается, когда дата переноса уже занята другой
// отменой этого же запуска курса. Срабатывает уникальный индекс на
// (course_instance_id, rescheduled_to_date): две вкладки могли одновременно
// вычислить одну и ту же свободную дату, выигрывает первая записавшая.
var ErrRescheduleDateTaken = errors.New("reschedule date already taken")

// CancellationRepository управляет записями об отменах занятий
type CancellationRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewCancellationRepository(pool *pgxpool.Pool, logger *zap.Logger) *CancellationRepository {
	return &CancellationRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create создаёт запись об отмене. Запись создаётся до подбора новой даты,
// с is_rescheduled = false: отмена — свершившийся факт независимо от того,
// удастся ли перенос.
func (r *CancellationRepository) Create(ctx context.Context, record *model.CancellationRecord) error {
	query := `
		INSERT INTO lesson_cancellations (course_instance_id, lesson_id, original_date, cancellation_reason, is_rescheduled, rescheduled_to_date)
		VALUES ($1, $2, $3, $4, false, NULL)
		RETURNING id, cancelled_at
	`

	err := r.pool.QueryRow(ctx, query,
		record.CourseInstanceID,
		record.LessonID,
		record.OriginalDate,
		record.CancellationReason,
	).Scan(&record.ID, &record.CancelledAt)

	if err != nil {
		return fmt.Errorf("create cancellation: %w", err)
	}

	return nil
}

// MarkRescheduled выставляет дату переноса у существующей отмены.
// При конфликте уникального индекса возвращает ErrRescheduleDateTaken.
func (r *CancellationRepository) MarkRescheduled(ctx context.Context, id int64, rescheduledTo time.Time) error {
	query := `
		UPDATE lesson_cancellations
		SET is_rescheduled = true, rescheduled_to_date = $2
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, rescheduledTo)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrRescheduleDateTaken
		}
		return fmt.Errorf("mark cancellation rescheduled: %w", err)
	}

	return nil
}

// GetByCourseInstanceID получает все отмены запуска курса
func (r *CancellationRepository) GetByCourseInstanceID(ctx context.Context, courseInstanceID int64) ([]*model.CancellationRecord, error) {
	query := `
		SELECT id, course_instance_id, lesson_id, original_date, cancellation_reason, cancelled_at, is_rescheduled, rescheduled_to_date
		FROM lesson_cancellations
		WHERE course_instance_id = $1
		ORDER BY original_date
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get cancellations by course instance: %w", err)
	}
	defer rows.Close()

	var records []*model.CancellationRecord
	for rows.Next() {
		record := &model.CancellationRecord{}
		err := rows.Scan(
			&record.ID,
			&record.CourseInstanceID,
			&record.LessonID,
			&record.OriginalDate,
			&record.CancellationReason,
			&record.CancelledAt,
			&record.IsRescheduled,
			&record.RescheduledToDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cancellation: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// GetOriginalDates получает даты всех ранее отменённых занятий запуска курса.
// Используется при построении снимка занятости перед переносом.
func (r *CancellationRepository) GetOriginalDates(ctx context.Context, courseInstanceID int64) ([]time.Time, error) {
	query := `
		SELECT original_date
		FROM lesson_cancellations
		WHERE course_instance_id = $1
	`

	rows, err := r.pool.Query(ctx, query, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get cancellation original dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan cancellation date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}
