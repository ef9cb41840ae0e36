package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsslint/internal/logging"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Enabled     bool     `json:"enabled"`
	Default     any      `json:"default"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all registered lint rules with their descriptions and
the value they have in the default rule set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := collectRules(lint.DefaultRegistry, config.DefaultRuleSet())
			switch format {
			case formatJSON:
				return writeRulesJSON(cmd.OutOrStdout(), infos)
			case "text":
				writeRulesText(cmd.OutOrStdout(), infos)
				return nil
			default:
				return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format %q: must be text or json", format))
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func collectRules(registry *lint.Registry, defaults *config.RuleSet) []ruleInfo {
	rules := registry.Rules()
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		value, configured := defaults.Rules[rule.Name()]
		infos = append(infos, ruleInfo{
			Name:        rule.Name(),
			Description: rule.Description(),
			Tags:        rule.Tags(),
			Enabled:     configured && isEnabledValue(value),
			Default:     value,
		})
	}
	return infos
}

// isEnabledValue reports whether a rule value turns the rule on.
func isEnabledValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

func writeRulesText(out io.Writer, infos []ruleInfo) {
	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.InfoLevel)

	if len(infos) == 0 {
		logger.Info("no rules registered")
		return
	}

	logger.Info("available rules")
	for _, info := range infos {
		logger.Info(info.Name,
			logging.FieldEnabled, info.Enabled,
			logging.FieldTags, strings.Join(info.Tags, ","),
			logging.FieldDescription, info.Description,
		)
	}
}

func writeRulesJSON(out io.Writer, infos []ruleInfo) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
