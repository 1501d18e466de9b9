package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/google/uuid"
)

// Expand разворачивает недельный шаблон в конкретные занятия.
//
// Дни недели обходятся по возрастанию. Для каждого дня берётся его слот
// (день без слота пропускается) и стартовая дата: явная дата первого занятия,
// если она задана, иначе первая дата не раньше courseStart с нужным днём
// недели. Дальше занятия назначаются с шагом ровно 7 дней, пока не исчерпан
// общий лимит, не кончились уроки или дата не вышла за courseEnd.
//
// Лимит общий на весь шаблон: первые дни недели в отсортированном порядке
// могут выбрать его целиком, прежде чем очередь дойдёт до следующих.
// Каждый урок назначается ровно один раз, по порядку, без зацикливания.
//
// Результат не отсортирован по времени — итоговую сортировку делает Combine.
func Expand(pattern *model.RecurrencePattern, lessons []*model.Lesson, courseStart time.Time, courseEnd *time.Time) []*model.LessonOccurrence {
	if !pattern.HasSchedule() || len(lessons) == 0 {
		return nil
	}

	maxLessons := len(lessons)
	if pattern.TotalLessons != nil {
		maxLessons = *pattern.TotalLessons
	}

	days := append([]int(nil), pattern.DaysOfWeek...)
	sort.Ints(days)

	var occurrences []*model.LessonOccurrence
	count := 0
	lessonIdx := 0

	for _, weekday := range days {
		slot, ok := pattern.TimeSlots[weekday]
		if !ok {
			continue
		}

		date := firstDateForWeekday(slot, weekday, courseStart)

		for count < maxLessons && lessonIdx < len(lessons) {
			if courseEnd != nil && afterDay(date, *courseEnd) {
				break
			}

			lesson := lessons[lessonIdx]
			occurrences = append(occurrences, &model.LessonOccurrence{
				ID:               occurrenceID(pattern.CourseInstanceID, count),
				CourseInstanceID: pattern.CourseInstanceID,
				LessonID:         lesson.ID,
				LessonNumber:     count + 1,
				LessonTitle:      lesson.Title,
				ScheduledStart:   atClock(date, slot.StartTime),
				ScheduledEnd:     atClock(date, slot.EndTime),
				Source:           model.OccurrenceSourceGenerated,
			})

			lessonIdx++
			count++
			date = date.AddDate(0, 0, 7)
		}
	}

	return occurrences
}

// firstDateForWeekday определяет дату первого занятия для дня недели:
// явный якорь из слота либо первая подходящая дата от начала курса
func firstDateForWeekday(slot model.TimeSlot, weekday int, courseStart time.Time) time.Time {
	if slot.FirstLessonDate != nil {
		return startOfDay(*slot.FirstLessonDate)
	}

	date := startOfDay(courseStart)
	for int(date.Weekday()) != weekday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// occurrenceID порождает стабильный синтетический идентификатор занятия.
// Сгенерированные занятия не хранятся в БД, поэтому id детерминированно
// выводится из пары (запуск курса, порядковый индекс).
func occurrenceID(courseInstanceID int64, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("occurrence:%d:%d", courseInstanceID, index))).String()
}
