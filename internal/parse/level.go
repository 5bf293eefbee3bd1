package parse

import (
	"regexp"

	"github.com/ikovacevic/logsift/internal/domain"
)

// levelPattern matches the first severity keyword that appears as a whole
// word, bounded by non-alphanumeric characters or the string edges. WARNING
// is listed before WARN so the longer token wins at the same offset. Matching
// is case-sensitive: logs conventionally emit all-caps level tokens, and
// matching lowercase words like "error" would misclassify free-text messages.
var levelPattern = regexp.MustCompile(`(?:^|[^0-9A-Za-z])(ERROR|WARNING|WARN|INFO|DEBUG)(?:[^0-9A-Za-z]|$)`)

// Classify returns the severity of a single line. The leftmost keyword wins
// when several appear; lines with no recognized keyword are UNKNOWN.
// Pure function, safe on any input including the empty string.
func Classify(line string) domain.Level {
	level, _ := locateLevel(line)
	return level
}

// locateLevel reports the level plus the byte offset just past the keyword,
// which the token extractor uses to find the message remainder. The offset
// is -1 when no keyword matched.
func locateLevel(line string) (domain.Level, int) {
	m := levelPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return domain.LevelUnknown, -1
	}
	keyword := line[m[2]:m[3]]
	switch keyword {
	case "WARNING", "WARN":
		return domain.LevelWarn, m[3]
	case "ERROR":
		return domain.LevelError, m[3]
	case "INFO":
		return domain.LevelInfo, m[3]
	default:
		return domain.LevelDebug, m[3]
	}
}
