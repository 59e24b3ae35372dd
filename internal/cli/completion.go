package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "-" (e.g., "backend")
	Short     string   // short flag (e.g., "b")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "base", "duration")
	IsBackend bool     // true if values come from the backend registry (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "backend", Short: "b", Help: "Evaluation backend", IsBackend: true, ValueName: "backend"},
	{Long: "base", Help: "Output base", Values: []string{"8", "10", "16"}, ValueName: "base"},
	{Long: "upper", Help: "Uppercase hexadecimal output"},
	{Long: "show-base", Help: "Prefix output with 0 / 0x / 0X"},
	{Long: "timeout", Help: "Evaluation timeout", Values: []string{"10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "repl", Short: "i", Help: "Interactive calculator"},
	{Long: "tui", Help: "Full-screen dashboard"},
	{Long: "serve", Help: "Metrics listen address", ValueName: "address"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "verbose", Short: "v", Help: "Debug logging"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified
// shell. Supported shells are "bash" and "zsh".
func GenerateCompletion(out io.Writer, shell string, backends []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, backends)
	case "zsh":
		return generateZshCompletion(out, backends)
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh)", shell)
	}
}

func generateBashCompletion(out io.Writer, backends []string) error {
	var flags []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			flags = append(flags, "-"+f.Long)
		}
		if f.Short != "" {
			flags = append(flags, "-"+f.Short)
		}
	}

	fmt.Fprintf(out, `# bash completion for exactcalc
_exactcalc() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "$prev" in
`)
	for _, f := range flagRegistry {
		values := f.Values
		if f.IsBackend {
			values = append(append([]string{}, backends...), "all")
		}
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(out, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n            return 0\n            ;;\n",
			f.Long, strings.Join(values, " "))
	}
	fmt.Fprintf(out, `    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    fi
}
complete -F _exactcalc exactcalc
`, strings.Join(flags, " "))
	return nil
}

func generateZshCompletion(out io.Writer, backends []string) error {
	fmt.Fprintln(out, "#compdef exactcalc")
	fmt.Fprintln(out, "_arguments \\")
	for _, f := range flagRegistry {
		values := f.Values
		if f.IsBackend {
			values = append(append([]string{}, backends...), "all")
		}
		spec := fmt.Sprintf("  '-%s[%s]", f.Long, f.Help)
		if len(values) > 0 {
			spec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
		} else if f.ValueName != "" {
			spec += ":" + f.ValueName + ":"
		}
		spec += "' \\"
		fmt.Fprintln(out, spec)
	}
	fmt.Fprintln(out, "  '*:expression:'")
	return nil
}
