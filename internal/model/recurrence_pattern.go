package model

import "time"

// TimeSlot описывает время занятия в конкретный день недели
type TimeSlot struct {
	StartTime       string     `json:"start_time"`        // "HH:MM", локальное время
	EndTime         string     `json:"end_time"`          // "HH:MM", всегда позже StartTime
	FirstLessonDate *time.Time `json:"first_lesson_date"` // явная дата первого занятия (может быть nil)
}

// RecurrencePattern представляет недельный шаблон расписания курса.
// Хранится в БД построчно (одна строка на день недели, общий group_id),
// собирается репозиторием в единую структуру.
type RecurrencePattern struct {
	CourseInstanceID int64            `json:"course_instance_id"`
	DaysOfWeek       []int            `json:"days_of_week"` // 0 = Sunday, 6 = Saturday
	TimeSlots        map[int]TimeSlot `json:"time_slots"`   // день недели -> слот, не более одного слота на день
	TotalLessons     *int             `json:"total_lessons"`
}

// HasSchedule сообщает, задан ли у шаблона хотя бы один день и слот
func (p *RecurrencePattern) HasSchedule() bool {
	return p != nil && len(p.DaysOfWeek) > 0 && len(p.TimeSlots) > 0
}
