package model

import "time"

// CourseInstance представляет конкретный запуск курса: курс + преподаватель +
// учреждение + период проведения
type CourseInstance struct {
	ID            int64      `json:"id"`
	CourseID      int64      `json:"course_id"`
	InstructorID  int64      `json:"instructor_id"`
	InstitutionID int64      `json:"institution_id"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`    // nil = без ограничения по дате
	HourlyRate    int        `json:"hourly_rate"` // в копейках/центах
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
