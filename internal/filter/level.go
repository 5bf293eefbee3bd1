package filter

import (
	"github.com/ikovacevic/logsift/internal/domain"
)

// LevelFilter filters records by minimum severity. UNKNOWN records never pass
// because an unclassified line has no severity to compare.
type LevelFilter struct {
	minLevel domain.Level
}

// NewLevelFilter creates a level filter
func NewLevelFilter(minLevel domain.Level) *LevelFilter {
	return &LevelFilter{minLevel: minLevel}
}

// Match returns true if the record level is >= minimum level
func (f *LevelFilter) Match(rec *domain.Record) bool {
	return rec.Level.Priority() >= f.minLevel.Priority()
}
