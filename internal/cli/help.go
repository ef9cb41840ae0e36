package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsslint/internal/ui/pretty"
)

// helpStyles holds the styles used by command help output.
type helpStyles struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{heading: plain, command: plain, flag: plain, dim: plain}
	}
	return helpStyles{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ heading "Usage:" }}{{if .Runnable}}
  {{ command .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{ .CommandPath }} [command] --help" for more information about a command.
{{- end}}
`

// applyHelpTemplates installs styled help on cmd and its subcommands.
// colorMode is read when help is rendered, after flags are parsed.
func applyHelpTemplates(cmd *cobra.Command, colorMode *string) {
	render := func(command *cobra.Command, out io.Writer) error {
		styles := newHelpStyles(pretty.IsColorEnabled(*colorMode, out))
		tmpl, err := template.New("help").Funcs(template.FuncMap{
			"heading":   func(s string) string { return styles.heading.Render(s) },
			"command":   func(s string) string { return styles.command.Render(s) },
			"dim":       func(s string) string { return styles.dim.Render(s) },
			"flags":     func(s string) string { return styleFlagUsages(styles, s) },
			"rpad":      rpad,
			"trimRight": func(s string) string { return strings.TrimRight(s, " \t\n") },
		}).Parse(helpTemplate)
		if err != nil {
			return err
		}
		return tmpl.Execute(out, command)
	}

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command, command.OutOrStdout()); err != nil {
			command.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(command, command.OutOrStderr())
	})
}

// styleFlagUsages colors the flag names of a pflag usage block.
func styleFlagUsages(styles helpStyles, usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		end := strings.Index(trimmed, "  ")
		if end < 0 || !strings.HasPrefix(trimmed, "-") {
			continue
		}
		names, rest := trimmed[:end], trimmed[end:]
		var styled []string
		for _, token := range strings.Fields(names) {
			if strings.HasPrefix(token, "-") {
				styled = append(styled, styles.flag.Render(token))
			} else {
				styled = append(styled, styles.dim.Render(token))
			}
		}
		lines[i] = indent + strings.Join(styled, " ") + rest
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
