package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ikovacevic/logsift/internal/aggregate"
	"github.com/ikovacevic/logsift/internal/domain"
	"github.com/ikovacevic/logsift/internal/filter"
	"github.com/ikovacevic/logsift/internal/output"
)

// StatsCmd reports per-file severity counts for one or more log files
type StatsCmd struct {
	Files    []string `arg:"" required:"" help:"Log files to summarize"`
	Jobs     int      `default:"${config_jobs}" help:"Maximum files scanned concurrently"`
	Grep     string   `help:"Only count lines matching this regular expression"`
	Exclude  string   `help:"Skip lines matching this regular expression"`
	MinLevel string   `name:"min-level" help:"Drop lines below this severity (debug, info, warn, error)"`

	clk clock.Clock
}

// fileStats holds the scan result for a single input file.
type fileStats struct {
	path string
	agg  *aggregate.Aggregator
	err  error
}

// Run executes the stats command
func (c *StatsCmd) Run(globals *Globals) error {
	if c.Jobs < 1 {
		return c.outputError(globals, codeBadArgument, "--jobs must be at least 1")
	}

	chain, err := buildFilters(c.Grep, c.Exclude, c.MinLevel)
	if err != nil {
		return c.outputError(globals, codeBadArgument, err.Error())
	}

	clk := c.clockOrReal()
	start := clk.Now()

	// Each file gets its own aggregator, so goroutines never share state.
	results := make([]fileStats, len(c.Files))
	var g errgroup.Group
	g.SetLimit(c.Jobs)
	for i, path := range c.Files {
		g.Go(func() error {
			results[i] = scanFileStats(globals, path, chain)
			return nil
		})
	}
	g.Wait()

	elapsed := clk.Since(start)

	totalLines := 0
	failed := 0
	totals := make(map[domain.Level]int)
	for _, res := range results {
		if res.err != nil {
			failed++
			continue
		}
		totalLines += res.agg.TotalLines()
		for _, level := range domain.DisplayLevels {
			totals[level] += res.agg.LevelCount(level)
		}
		totals[domain.LevelUnknown] += res.agg.LevelCount(domain.LevelUnknown)
	}
	totalErrors := totals[domain.LevelError]
	totalWarns := totals[domain.LevelWarn]

	if failed == len(c.Files) {
		for _, res := range results {
			emitWarning(globals, fmt.Sprintf("skipping %s: %s", res.path, res.err))
		}
		return c.outputError(globals, codeFileNotFound, "no readable input files")
	}

	linesPerSec := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		linesPerSec = float64(totalLines) / secs
	}

	if globals.Format == "ndjson" {
		return c.writeNDJSON(globals, results, failed, totalLines, totalErrors, elapsed, linesPerSec)
	}

	for _, res := range results {
		if res.err != nil {
			emitWarning(globals, fmt.Sprintf("skipping %s: %s", res.path, res.err))
		}
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header([]string{"FILE", "LINES", "ERROR", "WARN", "INFO", "DEBUG", "UNKNOWN"})
	for _, res := range results {
		if res.err != nil {
			continue
		}
		table.Append([]string{
			res.path,
			strconv.Itoa(res.agg.TotalLines()),
			strconv.Itoa(res.agg.LevelCount(domain.LevelError)),
			strconv.Itoa(res.agg.LevelCount(domain.LevelWarn)),
			strconv.Itoa(res.agg.LevelCount(domain.LevelInfo)),
			strconv.Itoa(res.agg.LevelCount(domain.LevelDebug)),
			strconv.Itoa(res.agg.LevelCount(domain.LevelUnknown)),
		})
	}
	if len(c.Files)-failed > 1 {
		table.Append([]string{
			"TOTAL",
			strconv.Itoa(totalLines),
			strconv.Itoa(totals[domain.LevelError]),
			strconv.Itoa(totals[domain.LevelWarn]),
			strconv.Itoa(totals[domain.LevelInfo]),
			strconv.Itoa(totals[domain.LevelDebug]),
			strconv.Itoa(totals[domain.LevelUnknown]),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(globals.Stdout, "Scanned %d file(s), %d line(s) in %s (%.0f lines/sec)\n",
		len(c.Files)-failed, totalLines, elapsed.Round(time.Millisecond), linesPerSec)

	emitStatus(globals, totalErrors > 0, totalWarns > 0)
	return nil
}

func (c *StatsCmd) writeNDJSON(globals *Globals, results []fileStats, failed, totalLines, totalErrors int, elapsed time.Duration, linesPerSec float64) error {
	writer := output.NewNDJSONWriter(globals.Stdout)
	for _, res := range results {
		out := output.FileStatsOutput{
			Type:          "file_stats",
			SchemaVersion: output.SchemaVersion,
			File:          res.path,
		}
		if res.err != nil {
			out.Error = res.err.Error()
		} else {
			out.TotalLines = res.agg.TotalLines()
			out.ErrorCount = res.agg.LevelCount(domain.LevelError)
			out.WarnCount = res.agg.LevelCount(domain.LevelWarn)
			out.InfoCount = res.agg.LevelCount(domain.LevelInfo)
			out.DebugCount = res.agg.LevelCount(domain.LevelDebug)
			out.UnknownCount = res.agg.LevelCount(domain.LevelUnknown)
		}
		if err := writer.WriteRaw(&out); err != nil {
			return err
		}
	}
	return writer.WriteRaw(&output.StatsSummaryOutput{
		Type:           "stats_summary",
		SchemaVersion:  output.SchemaVersion,
		Files:          len(results),
		FailedFiles:    failed,
		TotalLines:     totalLines,
		ErrorCount:     totalErrors,
		ElapsedSeconds: elapsed.Seconds(),
		LinesPerSecond: linesPerSec,
	})
}

// scanFileStats opens and scans one file; the handle is closed before return.
func scanFileStats(globals *Globals, path string, chain *filter.Chain) fileStats {
	res := fileStats{path: path}

	file, err := os.Open(path)
	if err != nil {
		res.err = err
		return res
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			globals.Debug("failed to close file", zap.String("file", path), zap.Error(cerr))
		}
	}()

	res.agg = aggregate.New()
	res.err = scanLines(file, chain, res.agg)
	return res
}

func (c *StatsCmd) clockOrReal() clock.Clock {
	if c.clk == nil {
		return clock.New()
	}
	return c.clk
}

func (c *StatsCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
