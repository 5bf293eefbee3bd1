package cli

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ikovacevic/logsift/internal/config"
)

// CLI is the root command structure for logsift
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-report output (status line, warnings)"`
	Verbose bool   `short:"v" help:"Show debug output (scan progress, internal state)"`

	// Commands
	Analyze    AnalyzeCmd    `cmd:"" default:"withargs" help:"Analyze a log file and print a summary report"`
	Stats      StatsCmd      `cmd:"" help:"Per-file severity counts for one or more log files"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
}

// NewGlobals creates a new Globals instance with config fallbacks
func NewGlobals(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	g.Logger = newLogger(g.Verbose)
	return g
}

// newLogger builds the diagnostics logger. Diagnostics always go to stderr so
// the stdout report stays byte-stable.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// Debug logs a debug message if verbose mode is enabled
func (g *Globals) Debug(msg string, fields ...zap.Field) {
	if g.Logger != nil {
		g.Logger.Debug(msg, fields...)
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	} else {
		io.WriteString(globals.Stdout, "logsift version "+Version+" ("+Commit+")\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
