package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsslint/internal/configloader"
	"github.com/yaklabco/gocsslint/internal/logging"
	"github.com/yaklabco/gocsslint/internal/ui/pretty"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/lint"
	"github.com/yaklabco/gocsslint/pkg/reporter"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

type lintFlags struct {
	rules     []string
	noContext bool
	compact   bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint CSS and SCSS files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint CSS and SCSS files for syntax errors and style issues.

By default, lints all .css and .scss files under the current directory.
Specify paths to lint specific files or directories. Files given explicitly
are linted in the order given.

Examples:
  gocsslint lint                                  # Lint current directory
  gocsslint lint src/styles/                      # Lint a directory
  gocsslint lint main.scss theme.css              # Lint two files
  gocsslint lint --syntax css legacy.css          # Parse as plain CSS
  gocsslint lint --rule block-no-empty=null a.css # Turn a rule off
  gocsslint lint --rule 'selector-max-id=[0, {severity: warning}]'
  gocsslint lint --format sarif -o lint.sarif     # SARIF report for CI`

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	defaults := config.NewConfig()

	cmd.Flags().String("syntax", string(defaults.Syntax), "stylesheet syntax: scss, css, markdown, auto")
	cmd.Flags().String("format", string(defaults.Format), "output format: text, table, json, sarif, summary")
	cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().StringSlice("ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSlice("ext", defaults.Extensions, "file extensions to lint inside directories")
	cmd.Flags().StringArrayVar(&flags.rules, "rule", nil, "override a rule as name=value (repeatable)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON and SARIF output")
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	overrides, err := parseRuleOverrides(flags.rules)
	if err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:  configPath,
		Flags:         cmd.Flags(),
		RuleOverrides: overrides,
	})
	if err != nil {
		return withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldSyntax, cfg.Syntax,
		logging.FieldFormat, cfg.Format,
		logging.FieldRules, len(cfg.Rules),
	)

	files, err := runner.Discover(ctx, runner.DiscoverOptions{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
	})
	if err != nil {
		return withExitCode(ExitIOError, err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.ErrOrStderr()))
	progress := pretty.NewProgress(cmd.ErrOrStderr(), styles)

	opts := runner.Options{
		Rules:  cfg.Rules,
		Syntax: cfg.Syntax,
		Progress: func(fraction float64, message string) {
			logger.Debug(message, logging.FieldProgress, fraction)
			if !cfg.NoProgress {
				progress.Update(fraction, message)
			}
		},
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, args,
		logging.FieldFiles, len(files),
		logging.FieldWorkingDir, workDir,
		logging.FieldOutput, cfg.Output,
	)

	lintRunner := runner.NewDefault()
	lintRunner.WorkingDir = workDir

	report, passed, runErr := lintRunner.Lint(ctx, files, opts)
	progress.Clear()
	if runErr != nil && !errors.Is(runErr, runner.ErrReadFailure) {
		return fmt.Errorf("lint run failed: %w", runErr)
	}
	logger.Debug("lint run complete",
		logging.FieldFindings, report.Len(),
		logging.FieldPassed, passed,
	)

	if err := writeReport(ctx, cmd.OutOrStdout(), cfg, flags, info, report, len(files)); err != nil {
		return err
	}

	if runErr != nil {
		return withExitCode(ExitIOError, runErr)
	}
	if !passed {
		return ErrLintIssuesFound
	}
	return nil
}

func writeReport(
	ctx context.Context,
	stdout io.Writer,
	cfg *config.Config,
	flags *lintFlags,
	info BuildInfo,
	report *runner.Report,
	filesChecked int,
) (err error) {
	out := stdout
	color := cfg.Color
	if cfg.Output != "" {
		file, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return withExitCode(ExitIOError, fmt.Errorf("create output file: %w", createErr))
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = withExitCode(ExitIOError, fmt.Errorf("close output file: %w", closeErr))
			}
		}()
		buffered := bufio.NewWriter(file)
		defer func() {
			if flushErr := buffered.Flush(); flushErr != nil && err == nil {
				err = withExitCode(ExitIOError, fmt.Errorf("write output file: %w", flushErr))
			}
		}()
		out = buffered
		if color == "auto" {
			color = "never"
		}
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		Format:      format,
		Color:       color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		ToolVersion: info.Version,
		Registry:    lint.DefaultRegistry,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, report, filesChecked); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}
	return nil
}

// parseRuleOverrides decodes repeated --rule name=value flags. Later
// assignments to the same rule win.
func parseRuleOverrides(assignments []string) (map[string]any, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	overrides := make(map[string]any, len(assignments))
	for _, assignment := range assignments {
		name, value, err := config.ParseRuleAssignment(assignment)
		if err != nil {
			return nil, err
		}
		overrides[name] = value
	}
	return overrides, nil
}
