package model

import "time"

// CancellationRecord фиксирует отмену конкретного занятия.
// Жизненный цикл: создаётся с IsRescheduled=false, после успешного подбора
// новой даты выставляются IsRescheduled и RescheduledToDate. Никогда не
// удаляется и больше не изменяется.
type CancellationRecord struct {
	ID                 int64      `json:"id"`
	CourseInstanceID   int64      `json:"course_instance_id"`
	LessonID           int64      `json:"lesson_id"`
	OriginalDate       time.Time  `json:"original_date"` // дата занятия, которое отменили
	CancellationReason string     `json:"cancellation_reason"`
	CancelledAt        time.Time  `json:"cancelled_at"`
	IsRescheduled      bool       `json:"is_rescheduled"`
	RescheduledToDate  *time.Time `json:"rescheduled_to_date"` // nil, если перенос не удался
}
