package httpapi

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CancelOccurrenceRequest — запрос на отмену занятия с автоматическим переносом
type CancelOccurrenceRequest struct {
	LessonID     int64  `json:"lesson_id" validate:"required"`
	OriginalDate string `json:"original_date" validate:"required,datetime=2006-01-02"`
	Reason       string `json:"reason" validate:"required"`
}

// CreateReportRequest — запрос на создание отчёта о проведённом занятии
type CreateReportRequest struct {
	LessonID        int64  `json:"lesson_id" validate:"required"`
	LessonDate      string `json:"lesson_date" validate:"required,datetime=2006-01-02"`
	Topic           string `json:"topic" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
}

// CreateBlockedDateRequest — запрос на блокировку даты или диапазона дат
type CreateBlockedDateRequest struct {
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	RangeStart *string `json:"range_start" validate:"omitempty,datetime=2006-01-02"`
	RangeEnd   *string `json:"range_end" validate:"omitempty,datetime=2006-01-02"`
	Reason     string  `json:"reason" validate:"required"`
}

// PatternDayRequest — один день недели в шаблоне расписания
type PatternDayRequest struct {
	Weekday         int     `json:"weekday" validate:"min=0,max=6"`
	StartTime       string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string  `json:"end_time" validate:"required,datetime=15:04"`
	FirstLessonDate *string `json:"first_lesson_date" validate:"omitempty,datetime=2006-01-02"`
}

// SetPatternRequest — запрос на замену недельного шаблона запуска курса
type SetPatternRequest struct {
	Days         []PatternDayRequest `json:"days" validate:"required,min=1,dive"`
	TotalLessons *int                `json:"total_lessons" validate:"omitempty,min=1"`
}

// parseDate разбирает дату формата "YYYY-MM-DD". Формат уже проверен
// валидатором, но разбор всё равно возвращает ошибку, а не панику:
// хэндлеры могут вызывать его и для непроверенных значений.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return date, nil
}

// parseOptionalDate разбирает необязательную дату
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	date, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
