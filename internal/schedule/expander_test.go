package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func makeLessons(count int) []*model.Lesson {
	lessons := make([]*model.Lesson, 0, count)
	for i := 1; i <= count; i++ {
		lessons = append(lessons, &model.Lesson{
			ID:       int64(i),
			CourseID: 1,
			Position: i,
			Title:    fmt.Sprintf("L%d", i),
		})
	}
	return lessons
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestExpandEmptyInputs(t *testing.T) {
	lessons := makeLessons(3)
	start := date(2024, time.January, 1)

	tests := []struct {
		name    string
		pattern *model.RecurrencePattern
		lessons []*model.Lesson
	}{
		{
			name:    "nil pattern",
			pattern: nil,
			lessons: lessons,
		},
		{
			name: "no weekdays",
			pattern: &model.RecurrencePattern{
				CourseInstanceID: 1,
				TimeSlots:        map[int]model.TimeSlot{1: {StartTime: "10:00", EndTime: "11:00"}},
			},
			lessons: lessons,
		},
		{
			name: "no time slots",
			pattern: &model.RecurrencePattern{
				CourseInstanceID: 1,
				DaysOfWeek:       []int{1},
			},
			lessons: lessons,
		},
		{
			name: "no lessons",
			pattern: &model.RecurrencePattern{
				CourseInstanceID: 1,
				DaysOfWeek:       []int{1},
				TimeSlots:        map[int]model.TimeSlot{1: {StartTime: "10:00", EndTime: "11:00"}},
			},
			lessons: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Expand(tt.pattern, tt.lessons, start, nil))
		})
	}
}

// Лимит занятий общий на весь шаблон: первый день недели в отсортированном
// порядке выбирает его целиком, прежде чем очередь дойдёт до следующих.
func TestExpandFirstWeekdayConsumesTotalLessons(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 7,
		DaysOfWeek:       []int{1, 3},
		TimeSlots: map[int]model.TimeSlot{
			1: {StartTime: "10:00", EndTime: "11:00"},
			3: {StartTime: "14:00", EndTime: "15:00"},
		},
		TotalLessons: intPtr(4),
	}

	// 2024-01-01 — понедельник
	occurrences := Expand(pattern, makeLessons(4), date(2024, time.January, 1), nil)
	require.Len(t, occurrences, 4)

	expectedDates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
	}

	for i, occ := range occurrences {
		assert.Equal(t, time.Monday, occ.ScheduledStart.Weekday())
		assert.Equal(t, DateKey(expectedDates[i]), DateKey(occ.ScheduledStart))
		assert.Equal(t, i+1, occ.LessonNumber)
		assert.Equal(t, 10, occ.ScheduledStart.Hour())
		assert.Equal(t, 11, occ.ScheduledEnd.Hour())
		assert.Equal(t, fmt.Sprintf("L%d", i+1), occ.LessonTitle)
		assert.Equal(t, model.OccurrenceSourceGenerated, occ.Source)
	}
}

// Дата окончания курса обрезает первый день недели, и остаток лимита
// достаётся следующему
func TestExpandCourseEndHandsRemainderToNextWeekday(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 7,
		DaysOfWeek:       []int{3, 1}, // порядок входа не важен, обход по возрастанию
		TimeSlots: map[int]model.TimeSlot{
			1: {StartTime: "10:00", EndTime: "11:00"},
			3: {StartTime: "14:00", EndTime: "15:00"},
		},
	}

	end := date(2024, time.January, 10)
	occurrences := Expand(pattern, makeLessons(4), date(2024, time.January, 1), &end)
	require.Len(t, occurrences, 4)

	// Понедельники до границы: 1 и 8 января; затем среды: 3 и 10 января
	assert.Equal(t, "2024-01-01", DateKey(occurrences[0].ScheduledStart))
	assert.Equal(t, "2024-01-08", DateKey(occurrences[1].ScheduledStart))
	assert.Equal(t, "2024-01-03", DateKey(occurrences[2].ScheduledStart))
	assert.Equal(t, "2024-01-10", DateKey(occurrences[3].ScheduledStart))

	assert.Equal(t, 14, occurrences[2].ScheduledStart.Hour())
	assert.Equal(t, 15, occurrences[2].ScheduledEnd.Hour())
}

// Занятия одного дня недели идут с шагом ровно 7 дней
func TestExpandWeeklySpacing(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 2,
		DaysOfWeek:       []int{2},
		TimeSlots:        map[int]model.TimeSlot{2: {StartTime: "09:30", EndTime: "10:30"}},
	}

	occurrences := Expand(pattern, makeLessons(5), date(2024, time.March, 1), nil)
	require.Len(t, occurrences, 5)

	for i, occ := range occurrences {
		assert.Equal(t, time.Tuesday, occ.ScheduledStart.Weekday())
		assert.True(t, occ.ScheduledEnd.After(occ.ScheduledStart))
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, occ.ScheduledStart.Sub(occurrences[i-1].ScheduledStart))
		}
	}
}

func TestExpandAnchorDateOverridesCourseStart(t *testing.T) {
	anchor := date(2024, time.February, 12) // понедельник через месяц после старта
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 3,
		DaysOfWeek:       []int{1},
		TimeSlots: map[int]model.TimeSlot{
			1: {StartTime: "10:00", EndTime: "11:00", FirstLessonDate: timePtr(anchor)},
		},
	}

	occurrences := Expand(pattern, makeLessons(2), date(2024, time.January, 1), nil)
	require.Len(t, occurrences, 2)
	assert.Equal(t, "2024-02-12", DateKey(occurrences[0].ScheduledStart))
	assert.Equal(t, "2024-02-19", DateKey(occurrences[1].ScheduledStart))
}

func TestExpandTotalLessonsCap(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 4,
		DaysOfWeek:       []int{5},
		TimeSlots:        map[int]model.TimeSlot{5: {StartTime: "16:00", EndTime: "17:00"}},
		TotalLessons:     intPtr(2),
	}

	occurrences := Expand(pattern, makeLessons(6), date(2024, time.January, 1), nil)
	assert.Len(t, occurrences, 2)
}

// Уроки назначаются по одному разу, без зацикливания: лимит больше числа
// уроков ничего не добавляет
func TestExpandLessonsConsumedOnce(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 5,
		DaysOfWeek:       []int{1},
		TimeSlots:        map[int]model.TimeSlot{1: {StartTime: "10:00", EndTime: "11:00"}},
		TotalLessons:     intPtr(10),
	}

	occurrences := Expand(pattern, makeLessons(3), date(2024, time.January, 1), nil)
	require.Len(t, occurrences, 3)
	assert.Equal(t, []string{"L1", "L2", "L3"}, []string{
		occurrences[0].LessonTitle, occurrences[1].LessonTitle, occurrences[2].LessonTitle,
	})
}

func TestExpandWeekdayWithoutSlotSkipped(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 6,
		DaysOfWeek:       []int{1, 4},
		TimeSlots:        map[int]model.TimeSlot{4: {StartTime: "12:00", EndTime: "13:00"}},
	}

	occurrences := Expand(pattern, makeLessons(2), date(2024, time.January, 1), nil)
	require.Len(t, occurrences, 2)
	for _, occ := range occurrences {
		assert.Equal(t, time.Thursday, occ.ScheduledStart.Weekday())
	}
}

// Функция чистая: повторный вызов с теми же входами даёт тот же результат,
// включая синтетические идентификаторы
func TestExpandDeterministic(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 8,
		DaysOfWeek:       []int{1, 3},
		TimeSlots: map[int]model.TimeSlot{
			1: {StartTime: "10:00", EndTime: "11:00"},
			3: {StartTime: "14:00", EndTime: "15:00"},
		},
	}
	lessons := makeLessons(4)
	start := date(2024, time.January, 1)

	first := Expand(pattern, lessons, start, nil)
	second := Expand(pattern, lessons, start, nil)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].ScheduledStart, second[i].ScheduledStart)
	}
}
