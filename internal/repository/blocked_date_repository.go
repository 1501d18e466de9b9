package repository

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlockedDateRepository управляет глобальным списком заблокированных дат
// (праздники, каникулы учреждения)
type BlockedDateRepository struct {
	pool *pgxpool.Pool
}

func NewBlockedDateRepository(pool *pgxpool.Pool) *BlockedDateRepository {
	return &BlockedDateRepository{pool: pool}
}

// GetAll получает все заблокированные даты. Список глобальный, не по курсам.
func (r *BlockedDateRepository) GetAll(ctx context.Context) ([]model.BlockedDate, error) {
	query := `
		SELECT id, blocked_date, range_start, range_end, reason, created_at
		FROM blocked_dates
		ORDER BY COALESCE(blocked_date, range_start)
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get blocked dates: %w", err)
	}
	defer rows.Close()

	var blocked []model.BlockedDate
	for rows.Next() {
		var b model.BlockedDate
		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.RangeStart,
			&b.RangeEnd,
			&b.Reason,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan blocked date: %w", err)
		}
		blocked = append(blocked, b)
	}

	return blocked, nil
}

// Create создаёт запись о заблокированной дате или диапазоне
func (r *BlockedDateRepository) Create(ctx context.Context, b *model.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (blocked_date, range_start, range_end, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.Date,
		b.RangeStart,
		b.RangeEnd,
		b.Reason,
	).Scan(&b.ID, &b.CreatedAt)

	if err != nil {
		return fmt.Errorf("create blocked date: %w", err)
	}

	return nil
}

// Delete удаляет запись о заблокированной дате
func (r *BlockedDateRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM blocked_dates WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete blocked date: %w", err)
	}

	return nil
}
