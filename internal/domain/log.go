package domain

// Level represents a recognized log severity.
type Level string

const (
	LevelError   Level = "ERROR"
	LevelWarn    Level = "WARN"
	LevelInfo    Level = "INFO"
	LevelDebug   Level = "DEBUG"
	LevelUnknown Level = "UNKNOWN"
)

// DisplayLevels lists the severities shown in the report table, in report
// order. UNKNOWN lines are counted in totals but never shown in the table.
var DisplayLevels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}

// Priority returns the severity ordering used by level filters
// (higher = more severe). UNKNOWN sorts below everything so a minimum-level
// filter always drops unclassified lines.
func (l Level) Priority() int {
	switch l {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return -1
	}
}

// ParseLevel converts a string to Level. Unrecognized input maps to UNKNOWN.
func ParseLevel(s string) Level {
	switch s {
	case "ERROR", "error":
		return LevelError
	case "WARN", "warn", "WARNING", "warning":
		return LevelWarn
	case "INFO", "info":
		return LevelInfo
	case "DEBUG", "debug":
		return LevelDebug
	default:
		return LevelUnknown
	}
}

// Record is one classified input line.
type Record struct {
	Line       string   // original line, unmodified
	Number     int      // 1-based line number in the source file
	Level      Level    // always set; UNKNOWN when no keyword matched
	IPs        []string // IPv4 addresses, deduplicated within the line
	MessageKey string   // trimmed remainder used for frequency grouping
}
