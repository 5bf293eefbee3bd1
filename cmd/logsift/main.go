package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ikovacevic/logsift/internal/cli"
	"github.com/ikovacevic/logsift/internal/config"
)

const quickStart = `logsift - plain-text log file analysis

START HERE (this is the command you want):
  logsift app.log

Useful flags:
  --top N           Number of top messages in the report (default 5)
  -f ndjson         Machine-readable output for scripts and agents

Other useful commands:
  logsift stats a.log b.log    Per-file severity counts
  logsift config show          Show effective configuration
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format": cfg.Format,
		"config_top":    strconv.Itoa(cfg.Defaults.Top),
		"config_jobs":   strconv.Itoa(cfg.Defaults.Jobs),
	}

	ctx := kong.Parse(&c,
		kong.Name("logsift"),
		kong.Description("logsift: Summarize plain-text log files\n\nSTART HERE: logsift <path-to-logfile>"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobals(&c, cfg)
	err = ctx.Run(globals)
	if err != nil {
		os.Exit(1)
	}
}
