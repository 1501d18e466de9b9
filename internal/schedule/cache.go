package schedule

import (
	"sync"

	"github.com/Vetrovv/course_scheduler/internal/model"
)

// Cache — кэш собранных расписаний по запускам курса. Явный объект,
// передаётся в сервисы как зависимость; инвалидируется при отменах,
// переносах и изменении заблокированных дат.
type Cache struct {
	mu      sync.RWMutex
	entries map[int64][]*model.LessonOccurrence
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[int64][]*model.LessonOccurrence),
	}
}

// Get возвращает закэшированное расписание запуска курса
func (c *Cache) Get(courseInstanceID int64) ([]*model.LessonOccurrence, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	occurrences, ok := c.entries[courseInstanceID]
	return occurrences, ok
}

// Put сохраняет расписание запуска курса
func (c *Cache) Put(courseInstanceID int64, occurrences []*model.LessonOccurrence) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[courseInstanceID] = occurrences
}

// Invalidate сбрасывает кэш одного запуска курса
func (c *Cache) Invalidate(courseInstanceID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, courseInstanceID)
}

// Clear сбрасывает кэш целиком (например, при изменении глобальных
// заблокированных дат)
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int64][]*model.LessonOccurrence)
}

// Len возвращает количество закэшированных запусков
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
