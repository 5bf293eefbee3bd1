package aggregate

import (
	"sort"

	"github.com/ikovacevic/logsift/internal/domain"
)

// Aggregator consumes classified records and maintains the running counts for
// one analysis pass. It owns all mutable state of a run: create a fresh
// Aggregator per invocation and never share one across runs.
type Aggregator struct {
	totalLines    int
	levelCounts   map[domain.Level]int
	messageCounts map[string]int
	messageFirst  map[string]int // message key -> line number of first occurrence
	uniqueIPs     map[string]struct{}
	ipOrder       []string // first-seen order for deterministic reports
}

// New creates an empty Aggregator with all five level counters present.
func New() *Aggregator {
	levels := map[domain.Level]int{
		domain.LevelError:   0,
		domain.LevelWarn:    0,
		domain.LevelInfo:    0,
		domain.LevelDebug:   0,
		domain.LevelUnknown: 0,
	}
	return &Aggregator{
		levelCounts:   levels,
		messageCounts: make(map[string]int),
		messageFirst:  make(map[string]int),
		uniqueIPs:     make(map[string]struct{}),
	}
}

// Absorb folds one record into the running totals. It never fails: malformed
// input has already been normalized to UNKNOWN/empty extraction upstream.
func (a *Aggregator) Absorb(rec *domain.Record) {
	a.totalLines++
	a.levelCounts[rec.Level]++

	if _, ok := a.messageCounts[rec.MessageKey]; !ok {
		a.messageFirst[rec.MessageKey] = rec.Number
	}
	a.messageCounts[rec.MessageKey]++

	for _, ip := range rec.IPs {
		if _, ok := a.uniqueIPs[ip]; ok {
			continue
		}
		a.uniqueIPs[ip] = struct{}{}
		a.ipOrder = append(a.ipOrder, ip)
	}
}

// TotalLines returns the number of absorbed records.
func (a *Aggregator) TotalLines() int {
	return a.totalLines
}

// LevelCount returns the count for a single severity.
func (a *Aggregator) LevelCount(level domain.Level) int {
	return a.levelCounts[level]
}

// UniqueIPs returns the distinct IPv4 addresses in first-seen order.
func (a *Aggregator) UniqueIPs() []string {
	out := make([]string, len(a.ipOrder))
	copy(out, a.ipOrder)
	return out
}

// TopMessages returns the n most frequent message keys sorted by count
// descending. Ties break by the line number of the first occurrence, so the
// ranking is stable across repeated runs on the same file.
func (a *Aggregator) TopMessages(n int) []domain.MessageCount {
	pairs := make([]domain.MessageCount, 0, len(a.messageCounts))
	for msg, count := range a.messageCounts {
		pairs = append(pairs, domain.MessageCount{Message: msg, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return a.messageFirst[pairs[i].Message] < a.messageFirst[pairs[j].Message]
	})

	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
