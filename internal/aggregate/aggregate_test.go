package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikovacevic/logsift/internal/domain"
)

func record(number int, level domain.Level, key string, ips ...string) *domain.Record {
	return &domain.Record{
		Line:       key,
		Number:     number,
		Level:      level,
		IPs:        ips,
		MessageKey: key,
	}
}

func TestAggregator_Absorb(t *testing.T) {
	t.Run("starts empty with all level counters present", func(t *testing.T) {
		agg := New()

		assert.Equal(t, 0, agg.TotalLines())
		for _, level := range domain.DisplayLevels {
			assert.Equal(t, 0, agg.LevelCount(level))
		}
		assert.Equal(t, 0, agg.LevelCount(domain.LevelUnknown))
		assert.Empty(t, agg.UniqueIPs())
		assert.Empty(t, agg.TopMessages(5))
	})

	t.Run("counts every line and its level", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelInfo, "a"))
		agg.Absorb(record(2, domain.LevelError, "b"))
		agg.Absorb(record(3, domain.LevelError, "b"))
		agg.Absorb(record(4, domain.LevelUnknown, "c"))

		assert.Equal(t, 4, agg.TotalLines())
		assert.Equal(t, 1, agg.LevelCount(domain.LevelInfo))
		assert.Equal(t, 2, agg.LevelCount(domain.LevelError))
		assert.Equal(t, 1, agg.LevelCount(domain.LevelUnknown))
		assert.Equal(t, 0, agg.LevelCount(domain.LevelWarn))
		assert.Equal(t, 0, agg.LevelCount(domain.LevelDebug))
	})

	t.Run("unknown lines count toward the total only", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelUnknown, "free text"))

		assert.Equal(t, 1, agg.TotalLines())
		for _, level := range domain.DisplayLevels {
			assert.Equal(t, 0, agg.LevelCount(level))
		}
	})

	t.Run("deduplicates IPs across lines in first-seen order", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelInfo, "a", "192.168.1.100"))
		agg.Absorb(record(2, domain.LevelInfo, "b", "10.0.0.50"))
		agg.Absorb(record(3, domain.LevelError, "c", "192.168.1.100"))

		assert.Equal(t, []string{"192.168.1.100", "10.0.0.50"}, agg.UniqueIPs())
		assert.Equal(t, 3, agg.TotalLines())
		assert.Equal(t, 2, agg.LevelCount(domain.LevelInfo))
		assert.Equal(t, 1, agg.LevelCount(domain.LevelError))
	})
}

func TestAggregator_TopMessages(t *testing.T) {
	t.Run("sorts by count descending", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelError, "rare"))
		agg.Absorb(record(2, domain.LevelError, "common"))
		agg.Absorb(record(3, domain.LevelError, "common"))
		agg.Absorb(record(4, domain.LevelError, "common"))

		top := agg.TopMessages(5)
		require.Len(t, top, 2)
		assert.Equal(t, domain.MessageCount{Message: "common", Count: 3}, top[0])
		assert.Equal(t, domain.MessageCount{Message: "rare", Count: 1}, top[1])
	})

	t.Run("breaks ties by first occurrence", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelInfo, "first"))
		agg.Absorb(record(2, domain.LevelInfo, "second"))
		agg.Absorb(record(3, domain.LevelInfo, "second"))
		agg.Absorb(record(4, domain.LevelInfo, "first"))

		top := agg.TopMessages(5)
		require.Len(t, top, 2)
		assert.Equal(t, "first", top[0].Message)
		assert.Equal(t, "second", top[1].Message)
	})

	t.Run("tie order is stable across repeated calls", func(t *testing.T) {
		agg := New()
		for i, key := range []string{"a", "b", "c", "d", "e"} {
			agg.Absorb(record(i+1, domain.LevelInfo, key))
		}

		first := agg.TopMessages(5)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, agg.TopMessages(5))
		}
	})

	t.Run("truncates to n entries", func(t *testing.T) {
		agg := New()
		agg.Absorb(record(1, domain.LevelInfo, "a"))
		agg.Absorb(record(2, domain.LevelInfo, "b"))
		agg.Absorb(record(3, domain.LevelInfo, "c"))

		assert.Len(t, agg.TopMessages(2), 2)
		assert.Empty(t, agg.TopMessages(0))
	})
}
