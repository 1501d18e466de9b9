package model

import "time"

type Lesson struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	Position  int       `json:"position"` // порядковый номер в курсе, начиная с 1
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
