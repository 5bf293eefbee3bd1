package filter

import (
	"regexp"

	"github.com/ikovacevic/logsift/internal/domain"
)

// PatternFilter keeps records whose raw line matches a regex
type PatternFilter struct {
	pattern *regexp.Regexp
}

// NewPatternFilter creates a pattern filter from a regex string
func NewPatternFilter(pattern string) (*PatternFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &PatternFilter{pattern: re}, nil
}

// Match returns true if the raw line matches the pattern
func (f *PatternFilter) Match(rec *domain.Record) bool {
	return f.pattern.MatchString(rec.Line)
}

// ExcludeFilter drops records whose raw line matches a regex
type ExcludeFilter struct {
	pattern *regexp.Regexp
}

// NewExcludeFilter creates an exclusion filter from a regex string
func NewExcludeFilter(pattern string) (*ExcludeFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludeFilter{pattern: re}, nil
}

// Match returns true if the raw line does NOT match the pattern
func (f *ExcludeFilter) Match(rec *domain.Record) bool {
	return !f.pattern.MatchString(rec.Line)
}
