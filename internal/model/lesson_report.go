package model

import "time"

// LessonReport — отчёт о проведённом занятии. Даты отчётов участвуют в
// расчёте занятости при переносе отменённых занятий.
type LessonReport struct {
	ID               int64     `json:"id"`
	CourseInstanceID int64     `json:"course_instance_id"`
	LessonID         int64     `json:"lesson_id"`
	LessonDate       time.Time `json:"lesson_date"`
	Topic            string    `json:"topic"`
	DurationMinutes  int       `json:"duration_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

// PaySummary — агрегат для расчёта оплаты преподавателя по запуску курса
type PaySummary struct {
	CourseInstanceID int64 `json:"course_instance_id"`
	ReportedLessons  int   `json:"reported_lessons"`
	TotalMinutes     int   `json:"total_minutes"`
	AmountDue        int   `json:"amount_due"` // в копейках/центах, по почасовой ставке запуска
}
