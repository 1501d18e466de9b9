package schedule

import (
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
)

// rescheduleHorizonDays — предохранитель: дальше этого горизонта перенос
// не ищется, даже если у курса нет даты окончания
const rescheduleHorizonDays = 365

// FindNextAvailableDate ищет ближайшую свободную дату для переноса
// отменённого занятия. Перебор идёт по одному календарному дню начиная со
// следующего дня после originalDate. Дата подходит, если её день недели есть
// в шаблоне, она не заблокирована и её ключ дня отсутствует в occupied.
//
// Поиск останавливается, когда кандидат выходит за courseEnd (включительная
// граница) или за годовой горизонт от originalDate, если дата окончания не
// задана. Второе возвращаемое значение false — штатный исход "свободной даты
// нет"; вызывающий обязан оставить отмену без переноса, а не считать это
// ошибкой.
//
// Функция чистая: occupied и blocked — снимки на момент вызова, никакой
// блокировки здесь нет. Гонку одновременных переносов закрывает уникальный
// индекс на стороне хранилища.
func FindNextAvailableDate(pattern *model.RecurrencePattern, originalDate time.Time, occupied map[string]bool, blocked []model.BlockedDate, courseEnd *time.Time) (time.Time, bool) {
	if !pattern.HasSchedule() {
		return time.Time{}, false
	}

	patternDays := make(map[int]bool, len(pattern.DaysOfWeek))
	for _, d := range pattern.DaysOfWeek {
		patternDays[d] = true
	}

	horizon := startOfDay(originalDate).AddDate(0, 0, rescheduleHorizonDays)
	candidate := startOfDay(originalDate).AddDate(0, 0, 1)

	for i := 0; i < rescheduleHorizonDays; i++ {
		if courseEnd != nil {
			if afterDay(candidate, *courseEnd) {
				return time.Time{}, false
			}
		} else if afterDay(candidate, horizon) {
			return time.Time{}, false
		}

		if patternDays[int(candidate.Weekday())] &&
			!IsDateBlocked(candidate, blocked) &&
			!occupied[DateKey(candidate)] {
			return candidate, true
		}

		candidate = candidate.AddDate(0, 0, 1)
	}

	return time.Time{}, false
}
