package model

import "time"

// OccurrenceSource указывает, откуда взялась строка расписания
type OccurrenceSource string

const (
	OccurrenceSourceGenerated OccurrenceSource = "generated" // развёрнута из шаблона
	OccurrenceSourceLegacy    OccurrenceSource = "legacy"    // явная строка из БД
)

// LessonOccurrence представляет одно конкретное занятие: урок курса,
// назначенный на дату и время. Сгенерированные занятия не хранятся в БД
// и пересчитываются при каждом чтении.
type LessonOccurrence struct {
	ID               string           `json:"id"` // синтетический для generated, "legacy-<id>" для legacy
	CourseInstanceID int64            `json:"course_instance_id"`
	LessonID         int64            `json:"lesson_id"`
	LessonNumber     int              `json:"lesson_number"` // порядковый номер занятия, начиная с 1
	LessonTitle      string           `json:"lesson_title"`
	ScheduledStart   time.Time        `json:"scheduled_start"`
	ScheduledEnd     time.Time        `json:"scheduled_end"`
	Source           OccurrenceSource `json:"source"`
}
