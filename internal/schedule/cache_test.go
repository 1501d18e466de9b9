package schedule

import (
	"testing"
	"time"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	cache := NewCache()

	_, ok := cache.Get(1)
	assert.False(t, ok)

	occurrences := []*model.LessonOccurrence{
		occurrenceAt("gen-1", model.OccurrenceSourceGenerated, date(2024, time.January, 1)),
	}
	cache.Put(1, occurrences)

	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, occurrences, got)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache()
	cache.Put(1, nil)
	cache.Put(2, nil)

	cache.Invalidate(1)

	_, ok := cache.Get(1)
	assert.False(t, ok)
	_, ok = cache.Get(2)
	assert.True(t, ok)
}

func TestCacheClear(t *testing.T) {
	cache := NewCache()
	cache.Put(1, nil)
	cache.Put(2, nil)

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get(1)
	assert.False(t, ok)
}
