package schedule

import (
	"sort"

	"github.com/Vetrovv/course_scheduler/internal/model"
)

// Combine сливает явные (legacy) строки расписания с занятиями, развёрнутыми
// из шаблона, в единую ленту, отсортированную по времени начала.
// Сортировка стабильная: при равном времени сохраняется порядок входа.
func Combine(legacy, generated []*model.LessonOccurrence) []*model.LessonOccurrence {
	combined := make([]*model.LessonOccurrence, 0, len(legacy)+len(generated))
	combined = append(combined, legacy...)
	combined = append(combined, generated...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].ScheduledStart.Before(combined[j].ScheduledStart)
	})

	return combined
}
