package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ikovacevic/logsift/internal/domain"
)

// ipv4Candidate matches four dot-separated groups of 1-3 digits. Boundary and
// range checks happen separately: RE2 has no lookarounds, and consuming the
// boundary characters inside the pattern would swallow the separator between
// two adjacent addresses.
var ipv4Candidate = regexp.MustCompile(`(?:[0-9]{1,3}\.){3}[0-9]{1,3}`)

// Extract scans a line for IPv4 addresses and derives the message key used
// for frequency grouping. Addresses are deduplicated within the line and
// returned in scanning order. The message key is the trimmed remainder after
// the first level keyword, or the whole trimmed line when none matched; no
// further normalization is applied so identical recurring messages group
// together without any fuzzy-matching policy.
func Extract(line string) (ips []string, messageKey string) {
	_, after := locateLevel(line)
	if after >= 0 {
		messageKey = strings.TrimSpace(line[after:])
	} else {
		messageKey = strings.TrimSpace(line)
	}

	var seen map[string]bool
	for _, loc := range ipv4Candidate.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		if !ipBounded(line, start, end) {
			continue
		}
		cand := line[start:end]
		if !validOctets(cand) || seen[cand] {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[cand] = true
		ips = append(ips, cand)
	}
	return ips, messageKey
}

// NewRecord classifies and tokenizes one input line.
func NewRecord(line string, number int) *domain.Record {
	ips, key := Extract(line)
	return &domain.Record{
		Line:       line,
		Number:     number,
		Level:      Classify(line),
		IPs:        ips,
		MessageKey: key,
	}
}

// ipBounded rejects candidates embedded in a longer dotted-digit run,
// e.g. the middle of "1.2.3.4.5".
func ipBounded(line string, start, end int) bool {
	if start > 0 {
		c := line[start-1]
		if c == '.' || (c >= '0' && c <= '9') {
			return false
		}
	}
	if end < len(line) {
		c := line[end]
		if c == '.' || (c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// validOctets checks that every group is in range 0-255.
func validOctets(cand string) bool {
	for _, oct := range strings.Split(cand, ".") {
		n, err := strconv.Atoi(oct)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}
