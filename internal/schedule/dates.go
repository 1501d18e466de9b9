package schedule

import (
	"fmt"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
)

// dateKeyLayout — каноничный ключ календарного дня. Ключи в этом формате
// сравниваются как строки: лексикографический порядок совпадает с хронологическим.
const dateKeyLayout = "2006-01-02"

// DateKey нормализует момент времени до ключа календарного дня ("YYYY-MM-DD").
// Используется везде, где две даты сравниваются "в один день", а не "в один момент".
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// IsDateBlocked проверяет, попадает ли дата в список заблокированных.
// Запись блокирует либо один день (Date), либо диапазон [RangeStart, RangeEnd]
// включительно. Записи без пригодных дат никогда не совпадают.
func IsDateBlocked(date time.Time, blocked []model.BlockedDate) bool {
	key := DateKey(date)

	for _, b := range blocked {
		if b.Date != nil && DateKey(*b.Date) == key {
			return true
		}
		if b.RangeStart != nil && b.RangeEnd != nil {
			if key >= DateKey(*b.RangeStart) && key <= DateKey(*b.RangeEnd) {
				return true
			}
		}
	}

	return false
}

// startOfDay обрезает время до полуночи в той же локали
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// afterDay сообщает, что календарный день a позже календарного дня b
func afterDay(a, b time.Time) bool {
	return DateKey(a) > DateKey(b)
}

// atClock совмещает календарный день date со временем суток clock ("HH:MM").
// Формат clock валидируется на границе приложения, поэтому ошибка разбора
// здесь — ошибка программиста, а не данных. Паникуем, чтобы не породить
// молча неверную дату.
func atClock(date time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		panic(fmt.Sprintf("schedule: malformed clock value %q: %v", clock, err))
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}
