package schedule

import (
	"testing"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tuesdayPattern() *model.RecurrencePattern {
	return &model.RecurrencePattern{
		CourseInstanceID: 1,
		DaysOfWeek:       []int{2},
		TimeSlots:        map[int]model.TimeSlot{2: {StartTime: "10:00", EndTime: "11:00"}},
	}
}

func TestFindNextAvailableDateNextWeek(t *testing.T) {
	// 2024-03-05 — вторник; ближайший свободный вторник — через неделю
	original := date(2024, time.March, 5)

	newDate, found := FindNextAvailableDate(tuesdayPattern(), original, nil, nil, nil)
	require.True(t, found)
	assert.Equal(t, "2024-03-12", DateKey(newDate))
	assert.True(t, newDate.After(original))
}

func TestFindNextAvailableDateSkipsOccupied(t *testing.T) {
	original := date(2024, time.March, 5)
	end := date(2024, time.March, 19)
	occupied := map[string]bool{"2024-03-12": true}

	newDate, found := FindNextAvailableDate(tuesdayPattern(), original, occupied, nil, &end)
	require.True(t, found)
	// Граница courseEnd включительная
	assert.Equal(t, "2024-03-19", DateKey(newDate))
}

func TestFindNextAvailableDateSkipsBlockedSingle(t *testing.T) {
	original := date(2024, time.March, 5)
	blockedDay := date(2024, time.March, 12)
	blocked := []model.BlockedDate{{Date: &blockedDay}}

	newDate, found := FindNextAvailableDate(tuesdayPattern(), original, nil, blocked, nil)
	require.True(t, found)
	assert.Equal(t, "2024-03-19", DateKey(newDate))
}

func TestFindNextAvailableDateSkipsBlockedRange(t *testing.T) {
	original := date(2024, time.March, 5)
	rangeStart := date(2024, time.March, 10)
	rangeEnd := date(2024, time.March, 20)
	blocked := []model.BlockedDate{{RangeStart: &rangeStart, RangeEnd: &rangeEnd}}

	// Вторники 12 и 19 марта внутри диапазона, первый свободный — 26 марта
	newDate, found := FindNextAvailableDate(tuesdayPattern(), original, nil, blocked, nil)
	require.True(t, found)
	assert.Equal(t, "2024-03-26", DateKey(newDate))
}

func TestFindNextAvailableDateEndBoundExceeded(t *testing.T) {
	original := date(2024, time.March, 5)
	end := date(2024, time.March, 8) // до конца курса нет ни одного вторника

	_, found := FindNextAvailableDate(tuesdayPattern(), original, nil, nil, &end)
	assert.False(t, found)
}

// Без даты окончания поиск ограничен годовым горизонтом и всегда завершается
func TestFindNextAvailableDateHorizonTerminates(t *testing.T) {
	original := date(2024, time.March, 5)
	rangeStart := date(2024, time.March, 1)
	rangeEnd := date(2026, time.March, 1)
	blocked := []model.BlockedDate{{RangeStart: &rangeStart, RangeEnd: &rangeEnd}}

	_, found := FindNextAvailableDate(tuesdayPattern(), original, nil, blocked, nil)
	assert.False(t, found)
}

func TestFindNextAvailableDateMalformedPattern(t *testing.T) {
	original := date(2024, time.March, 5)

	tests := []struct {
		name    string
		pattern *model.RecurrencePattern
	}{
		{"nil pattern", nil},
		{"no weekdays", &model.RecurrencePattern{TimeSlots: map[int]model.TimeSlot{2: {StartTime: "10:00", EndTime: "11:00"}}}},
		{"no time slots", &model.RecurrencePattern{DaysOfWeek: []int{2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := FindNextAvailableDate(tt.pattern, original, nil, nil, nil)
			assert.False(t, found)
		})
	}
}

// Найденная дата всегда строго позже исходной, попадает на день недели
// шаблона и не входит в занятые
func TestFindNextAvailableDateProperties(t *testing.T) {
	pattern := &model.RecurrencePattern{
		CourseInstanceID: 1,
		DaysOfWeek:       []int{1, 3, 5},
		TimeSlots: map[int]model.TimeSlot{
			1: {StartTime: "10:00", EndTime: "11:00"},
			3: {StartTime: "10:00", EndTime: "11:00"},
			5: {StartTime: "10:00", EndTime: "11:00"},
		},
	}

	original := date(2024, time.March, 4) // понедельник
	occupied := map[string]bool{
		"2024-03-06": true,
		"2024-03-08": true,
	}

	newDate, found := FindNextAvailableDate(pattern, original, occupied, nil, nil)
	require.True(t, found)
	assert.True(t, newDate.After(original))
	assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, newDate.Weekday())
	assert.False(t, occupied[DateKey(newDate)])
	assert.Equal(t, "2024-03-11", DateKey(newDate))
}
