package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/ikovacevic/logsift/internal/aggregate"
	"github.com/ikovacevic/logsift/internal/domain"
)

const (
	reportHeader = "========== LOG ANALYSIS REPORT =========="
	reportRule   = "-----------------------------------------"
	reportFooter = "========================================="
)

// FormatReport renders the final analysis as the fixed-layout text report.
// Pure function of its inputs: the layout is byte-stable so callers can diff
// reports across runs.
func FormatReport(agg *aggregate.Aggregator, path string, topN int) string {
	var b strings.Builder

	b.WriteString(reportHeader + "\n")
	fmt.Fprintf(&b, "File: %s\n", path)
	fmt.Fprintf(&b, "Total Lines: %d\n", agg.TotalLines())

	b.WriteString(reportRule + "\n")
	for _, level := range domain.DisplayLevels {
		fmt.Fprintf(&b, "%-9s%d\n", string(level)+":", agg.LevelCount(level))
	}

	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Top %d Messages:\n", topN)
	for i, mc := range agg.TopMessages(topN) {
		fmt.Fprintf(&b, "  %d. %s (%d occurrences)\n", i+1, mc.Message, mc.Count)
	}

	b.WriteString(reportRule + "\n")
	b.WriteString("Unique IP Addresses Found:\n")
	ips := agg.UniqueIPs()
	if len(ips) == 0 {
		b.WriteString("  none found\n")
	}
	for _, ip := range ips {
		fmt.Fprintf(&b, "  - %s\n", ip)
	}

	b.WriteString(reportFooter + "\n")
	return b.String()
}

// NewReport builds the machine-readable report from the aggregator's final
// state for NDJSON output.
func NewReport(agg *aggregate.Aggregator, path string, topN int, now time.Time) *domain.Report {
	return &domain.Report{
		Type:          "report",
		SchemaVersion: SchemaVersion,
		Timestamp:     now.Format(time.RFC3339),
		File:          path,
		TotalLines:    agg.TotalLines(),
		ErrorCount:    agg.LevelCount(domain.LevelError),
		WarnCount:     agg.LevelCount(domain.LevelWarn),
		InfoCount:     agg.LevelCount(domain.LevelInfo),
		DebugCount:    agg.LevelCount(domain.LevelDebug),
		UnknownCount:  agg.LevelCount(domain.LevelUnknown),
		HasErrors:     agg.LevelCount(domain.LevelError) > 0,
		TopMessages:   agg.TopMessages(topN),
		UniqueIPs:     agg.UniqueIPs(),
	}
}
