package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikovacevic/logsift/internal/domain"
)

func rec(level domain.Level, line string) *domain.Record {
	return &domain.Record{Line: line, Level: level}
}

func TestLevelFilter(t *testing.T) {
	f := NewLevelFilter(domain.LevelWarn)

	assert.True(t, f.Match(rec(domain.LevelError, "x")))
	assert.True(t, f.Match(rec(domain.LevelWarn, "x")))
	assert.False(t, f.Match(rec(domain.LevelInfo, "x")))
	assert.False(t, f.Match(rec(domain.LevelDebug, "x")))
	assert.False(t, f.Match(rec(domain.LevelUnknown, "x")))
}

func TestPatternFilter(t *testing.T) {
	f, err := NewPatternFilter(`timeout|refused`)
	require.NoError(t, err)

	assert.True(t, f.Match(rec(domain.LevelError, "connection timeout after 30s")))
	assert.True(t, f.Match(rec(domain.LevelError, "connection refused")))
	assert.False(t, f.Match(rec(domain.LevelError, "connection closed")))

	_, err = NewPatternFilter(`(unclosed`)
	assert.Error(t, err)
}

func TestExcludeFilter(t *testing.T) {
	f, err := NewExcludeFilter(`heartbeat`)
	require.NoError(t, err)

	assert.False(t, f.Match(rec(domain.LevelDebug, "heartbeat ok")))
	assert.True(t, f.Match(rec(domain.LevelDebug, "real work done")))

	_, err = NewExcludeFilter(`[`)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	t.Run("empty chain passes everything", func(t *testing.T) {
		chain := NewChain()
		assert.True(t, chain.Match(rec(domain.LevelUnknown, "anything")))
	})

	t.Run("all filters must pass", func(t *testing.T) {
		pattern, err := NewPatternFilter(`disk`)
		require.NoError(t, err)

		chain := NewChain(NewLevelFilter(domain.LevelWarn))
		chain.Add(pattern)

		assert.True(t, chain.Match(rec(domain.LevelError, "disk full")))
		assert.False(t, chain.Match(rec(domain.LevelInfo, "disk full")))
		assert.False(t, chain.Match(rec(domain.LevelError, "memory full")))
	})
}
