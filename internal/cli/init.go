package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsslint/internal/configloader"
	"github.com/yaklabco/gocsslint/internal/logging"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

const initHeader = `gocsslint configuration.
Rule values: null or false turns a rule off, true enables it with its
defaults, any other value is the primary option, and [value, {severity: warning}]
adds secondary options. Run 'gocsslint rules' to list every rule.`

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gocsslint configuration file",
		Long: `Create a new .gocsslint.yml configuration file in the current directory.

Examples:
  gocsslint init                     Create a minimal .gocsslint.yml
  gocsslint init --full              Include every default rule value
  gocsslint init --output custom.yml Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "include the full default rule set")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .gocsslint.yml)")

	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.DefaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return withExitCode(ExitInvalidUsage,
				fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := initTemplate(flags.full)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", outputPath)
	return nil
}

// initTemplate renders a starter configuration. The full template lists
// every rule of the default rule set.
func initTemplate(full bool) ([]byte, error) {
	cfg := config.NewConfig()
	if full {
		cfg.Rules = config.DefaultRuleSet().Rules
	}
	return cfg.ToYAMLWithHeader(initHeader)
}
