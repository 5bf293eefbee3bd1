package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/ikovacevic/logsift/internal/aggregate"
	"github.com/ikovacevic/logsift/internal/domain"
	"github.com/ikovacevic/logsift/internal/filter"
	"github.com/ikovacevic/logsift/internal/output"
	"github.com/ikovacevic/logsift/internal/parse"
)

// AnalyzeCmd analyzes a plain-text log file and prints a summary report
type AnalyzeCmd struct {
	File     string `arg:"" required:"" help:"Log file to analyze"`
	Top      int    `short:"t" default:"${config_top}" help:"Number of top messages to report"`
	Grep     string `help:"Only count lines matching this regular expression"`
	Exclude  string `help:"Skip lines matching this regular expression"`
	MinLevel string `name:"min-level" help:"Drop lines below this severity (debug, info, warn, error)"`

	clk clock.Clock
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	if c.Top < 0 {
		return c.outputError(globals, codeBadArgument, "--top must be zero or positive")
	}

	chain, err := buildFilters(c.Grep, c.Exclude, c.MinLevel)
	if err != nil {
		return c.outputError(globals, codeBadArgument, err.Error())
	}

	// The driver owns the file handle: opened here, closed on every exit path.
	file, err := os.Open(c.File)
	if err != nil {
		return c.outputError(globals, codeFileNotFound, fmt.Sprintf("cannot open file: %s", err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			globals.Debug("failed to close file", zap.String("file", c.File), zap.Error(cerr))
		}
	}()

	agg := aggregate.New()
	if err := scanLines(file, chain, agg); err != nil {
		return c.outputError(globals, codeReadError, fmt.Sprintf("error reading file: %s", err))
	}
	globals.Debug("scan complete",
		zap.String("file", c.File),
		zap.Int("lines", agg.TotalLines()),
		zap.Int("unique_ips", len(agg.UniqueIPs())))

	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		report := output.NewReport(agg, c.File, c.Top, c.clockOrReal().Now())
		return writer.WriteReport(report)
	}

	if _, err := io.WriteString(globals.Stdout, output.FormatReport(agg, c.File, c.Top)); err != nil {
		return err
	}

	emitStatus(globals,
		agg.LevelCount(domain.LevelError) > 0,
		agg.LevelCount(domain.LevelWarn) > 0)
	return nil
}

func (c *AnalyzeCmd) clockOrReal() clock.Clock {
	if c.clk == nil {
		return clock.New()
	}
	return c.clk
}

func (c *AnalyzeCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}

// scanLines streams newline-delimited input through the classifier and
// extractor into agg. An empty input is not an error: the aggregator simply
// stays at zero and the formatter produces a valid zero-count report.
func scanLines(r io.Reader, chain *filter.Chain, agg *aggregate.Aggregator) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		rec := parse.NewRecord(scanner.Text(), lineNum)
		if chain != nil && !chain.Match(rec) {
			continue
		}
		agg.Absorb(rec)
	}
	return scanner.Err()
}
