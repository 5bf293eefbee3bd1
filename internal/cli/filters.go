package cli

import (
	"fmt"

	"github.com/ikovacevic/logsift/internal/domain"
	"github.com/ikovacevic/logsift/internal/filter"
)

// buildFilters compiles the optional record filters shared by analyze and
// stats. All flags default to empty, in which case the returned chain passes
// every record and every line is counted.
func buildFilters(grep, exclude, minLevel string) (*filter.Chain, error) {
	chain := filter.NewChain()

	if grep != "" {
		f, err := filter.NewPatternFilter(grep)
		if err != nil {
			return nil, fmt.Errorf("invalid --grep pattern: %v", err)
		}
		chain.Add(f)
	}

	if exclude != "" {
		f, err := filter.NewExcludeFilter(exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid --exclude pattern: %v", err)
		}
		chain.Add(f)
	}

	if minLevel != "" {
		lvl := domain.ParseLevel(minLevel)
		if lvl == domain.LevelUnknown {
			return nil, fmt.Errorf("invalid --min-level %q (use debug, info, warn, or error)", minLevel)
		}
		chain.Add(filter.NewLevelFilter(lvl))
	}

	return chain, nil
}
