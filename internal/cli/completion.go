package cli

import (
	"fmt"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	switch c.Shell {
	case "bash":
		return c.generateBash(globals)
	case "zsh":
		return c.generateZsh(globals)
	case "fish":
		return c.generateFish(globals)
	default:
		return fmt.Errorf("unsupported shell: %s", c.Shell)
	}
}

func (c *CompletionCmd) generateBash(globals *Globals) error {
	script := `# logsift bash completion script
# Add to ~/.bashrc or ~/.bash_profile:
#   eval "$(logsift completion bash)"

_logsift_completions() {
    local cur prev words cword
    _init_completion || return

    local commands="analyze stats config version completion"
    local global_flags="-f --format -q --quiet -v --verbose"

    case "${prev}" in
        logsift)
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "text ndjson" -- "${cur}"))
            return
            ;;
        --min-level)
            COMPREPLY=($(compgen -W "debug info warn error" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
    esac

    case "${words[1]}" in
        analyze)
            COMPREPLY=($(compgen -f -W "-t --top --grep --exclude --min-level ${global_flags}" -- "${cur}"))
            ;;
        stats)
            COMPREPLY=($(compgen -f -W "--jobs --grep --exclude --min-level ${global_flags}" -- "${cur}"))
            ;;
        config)
            COMPREPLY=($(compgen -W "show path generate ${global_flags}" -- "${cur}"))
            ;;
        *)
            COMPREPLY=($(compgen -f -W "${commands} ${global_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _logsift_completions logsift
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateZsh(globals *Globals) error {
	script := `#compdef logsift
# logsift zsh completion script
# Add to ~/.zshrc:
#   eval "$(logsift completion zsh)"

_logsift() {
    local -a commands
    commands=(
        'analyze:Analyze a log file and print a summary report'
        'stats:Per-file severity counts for one or more log files'
        'config:Show or manage configuration'
        'version:Show version information'
        'completion:Generate shell completions'
    )

    local -a global_opts
    global_opts=(
        '-f[Output format]:format:(text ndjson)'
        '--format[Output format]:format:(text ndjson)'
        '-q[Suppress non-report output]'
        '--quiet[Suppress non-report output]'
        '-v[Show debug output]'
        '--verbose[Show debug output]'
    )

    _arguments -C \
        $global_opts \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                analyze)
                    _arguments \
                        '-t[Number of top messages]:count:' \
                        '--top[Number of top messages]:count:' \
                        '--grep[Only count lines matching pattern]:pattern:' \
                        '--exclude[Skip lines matching pattern]:pattern:' \
                        '--min-level[Drop lines below severity]:level:(debug info warn error)' \
                        '1:file:_files' \
                        $global_opts
                    ;;
                stats)
                    _arguments \
                        '--jobs[Maximum files scanned concurrently]:count:' \
                        '--grep[Only count lines matching pattern]:pattern:' \
                        '--exclude[Skip lines matching pattern]:pattern:' \
                        '--min-level[Drop lines below severity]:level:(debug info warn error)' \
                        '*:file:_files' \
                        $global_opts
                    ;;
                config)
                    _arguments '1:subcommand:(show path generate)'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

compdef _logsift logsift
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateFish(globals *Globals) error {
	script := `# logsift fish completion script
# Add to ~/.config/fish/completions/logsift.fish

# Commands
complete -c logsift -n "__fish_use_subcommand" -a "analyze" -d "Analyze a log file and print a summary report"
complete -c logsift -n "__fish_use_subcommand" -a "stats" -d "Per-file severity counts for one or more log files"
complete -c logsift -n "__fish_use_subcommand" -a "config" -d "Show or manage configuration"
complete -c logsift -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c logsift -n "__fish_use_subcommand" -a "completion" -d "Generate shell completions"

# Global flags
complete -c logsift -s f -l format -d "Output format" -xa "text ndjson"
complete -c logsift -s q -l quiet -d "Suppress non-report output"
complete -c logsift -s v -l verbose -d "Show debug output"

# Analyze command
complete -c logsift -n "__fish_seen_subcommand_from analyze" -s t -l top -d "Number of top messages"
complete -c logsift -n "__fish_seen_subcommand_from analyze" -l grep -d "Only count lines matching pattern"
complete -c logsift -n "__fish_seen_subcommand_from analyze" -l exclude -d "Skip lines matching pattern"
complete -c logsift -n "__fish_seen_subcommand_from analyze" -l min-level -d "Drop lines below severity" -xa "debug info warn error"

# Stats command
complete -c logsift -n "__fish_seen_subcommand_from stats" -l jobs -d "Maximum files scanned concurrently"
complete -c logsift -n "__fish_seen_subcommand_from stats" -l grep -d "Only count lines matching pattern"
complete -c logsift -n "__fish_seen_subcommand_from stats" -l exclude -d "Skip lines matching pattern"
complete -c logsift -n "__fish_seen_subcommand_from stats" -l min-level -d "Drop lines below severity" -xa "debug info warn error"

# Config command
complete -c logsift -n "__fish_seen_subcommand_from config" -a "show path generate"

# Completion command
complete -c logsift -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}
