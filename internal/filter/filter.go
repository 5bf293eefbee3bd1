package filter

import (
	"github.com/ikovacevic/logsift/internal/domain"
)

// Filter determines if a log record should be included
type Filter interface {
	// Match returns true if the record passes the filter
	Match(rec *domain.Record) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(rec *domain.Record) bool {
	for _, f := range c.filters {
		if !f.Match(rec) {
			return false
		}
	}
	return true
}

// Add appends a filter to the chain
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}
