package model

import "time"

// LegacyScheduleRow — явно сохранённое занятие из старого механизма
// расписаний (до появления шаблонов). Для этого кода — только чтение.
type LegacyScheduleRow struct {
	ID               int64     `json:"id"`
	CourseInstanceID int64     `json:"course_instance_id"`
	LessonID         int64     `json:"lesson_id"`
	LessonNumber     int       `json:"lesson_number"`
	LessonTitle      string    `json:"lesson_title"`
	ScheduledStart   time.Time `json:"scheduled_start"`
	ScheduledEnd     time.Time `json:"scheduled_end"`
	CreatedAt        time.Time `json:"created_at"`
}
