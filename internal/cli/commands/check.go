package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/i18nlint/internal/cli/config"
	"github.com/leapstack-labs/i18nlint/internal/cli/output"
	"github.com/leapstack-labs/i18nlint/pkg/lint"
	_ "github.com/leapstack-labs/i18nlint/pkg/lint/rules" // register rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	TranslationDirs []string // Restrict files to these directories
	Format          string   // Output format: text, markdown, json
	Disable         []string // Rule IDs to disable
	Rules           []string // Run only specific rules
	Severity        string   // Minimum severity to display
	Jobs            int      // Concurrent validation workers
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate translation JSON files",
		Long: `Validate i18next translation JSON files for common authoring defects.

The file list is typically supplied by a pre-commit hook. Non-JSON paths are
skipped, and when translation directories are configured only files under
them are checked. Each file is validated independently:
  - empty-translation: a translation value is the empty string
  - plural-suffix-in-value: a value ends with a plural category suffix
    (_zero, _one, _two, _few, _many, _other) that belongs in the key
  - decode-error: the file is not valid JSON

The command exits non-zero if any file produced any finding.`,
		Example: `  # Validate files supplied by pre-commit
  i18nlint check public/locales/en/common.json public/locales/de/common.json

  # Only check files under configured translation directories
  i18nlint check --translation-dirs public/locales -- $(git diff --name-only --cached)

  # Output as JSON
  i18nlint check --format json public/locales/en/common.json

  # Disable a rule
  i18nlint check --disable TR02 public/locales/en/common.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.TranslationDirs, "translation-dirs", nil, "Directories containing translation files")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity to display: error, warning, info, hint")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", config.DefaultJobs, "Concurrent validation workers (0 = one per CPU)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// No files to check is a pass, not an error: pre-commit may invoke the
	// hook with an empty candidate list.
	if len(args) == 0 {
		return nil
	}

	dirs := opts.TranslationDirs
	if len(dirs) == 0 {
		dirs = cfg.TranslationDirs
	}

	paths := filterJSONFiles(args)
	paths = filterByTranslationDirs(paths, dirs)
	logger.Debug("checking translation files",
		"supplied", len(args), "selected", len(paths), "dirs", dirs)

	if len(paths) == 0 {
		return nil
	}

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	lintCfg := buildLintConfig(cfg, opts)
	report, err := lint.Run(cmd.Context(), paths, lintCfg, jobs)
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	renderCheckReport(r, report, opts.Severity)

	// Exit 1 on any finding, regardless of the severity display filter.
	if !report.OK() {
		return fmt.Errorf("translation issues found")
	}
	return nil
}

// filterJSONFiles drops paths without a .json extension (case-insensitive).
func filterJSONFiles(paths []string) []string {
	var out []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".json") {
			out = append(out, p)
		}
	}
	return out
}

// filterByTranslationDirs keeps paths inside any of the given directories
// (or their subdirectories). With no directories configured every path is
// kept - the filter is a pass-through.
func filterByTranslationDirs(paths, dirs []string) []string {
	if len(dirs) == 0 {
		return paths
	}

	var out []string
	for _, p := range paths {
		if underAnyDir(p, dirs) {
			out = append(out, p)
		}
	}
	return out
}

func underAnyDir(path string, dirs []string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absDir, absPath)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// buildLintConfig merges project config with CLI flag overrides.
func buildLintConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAllLeafRules() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// displayFiltered returns the file's diagnostics at or above the severity
// threshold. This affects presentation only, never the exit status.
func displayFiltered(diags []lint.Diagnostic, severityThreshold string) []lint.Diagnostic {
	if severityThreshold == "" {
		return diags
	}
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		return diags
	}

	var out []lint.Diagnostic
	for _, d := range diags {
		if d.Severity <= threshold {
			out = append(out, d)
		}
	}
	return out
}

func renderCheckReport(r *output.Renderer, report *lint.Report, severityThreshold string) {
	if report.OK() {
		if r.EffectiveMode() == output.ModeJSON {
			_ = r.JSON(buildCheckOutput(report, severityThreshold))
			return
		}
		r.Success("All translation files passed")
		return
	}

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(buildCheckOutput(report, severityThreshold))
		return
	}

	// Text/Markdown output: one block per failing file, one line per finding.
	r.Println("")
	for _, f := range report.FailedFiles() {
		diags := displayFiltered(f.Diagnostics, severityThreshold)
		if len(diags) == 0 {
			continue
		}

		header := f.Path
		if f.Locale != "" {
			header += "  [" + f.Locale + "]"
		}
		r.Println(r.Styles().FilePath.Render(header) + ":")
		for _, d := range diags {
			r.Printf("  - %s: %q - %s\n", r.Styles().Bold.Render(d.Kind), d.Key, d.Message)
		}
		r.Println("")
	}

	summary := summarize(report, severityThreshold)
	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n",
		strings.Join(parts, ", "), summary.FilesFailed, summary.FilesChecked)
}

// summarize counts the diagnostics at or above the display threshold, so the
// summary always agrees with the rendered findings. The exit status is still
// decided on the unfiltered report.
func summarize(report *lint.Report, severityThreshold string) output.CheckSummary {
	summary := output.CheckSummary{FilesChecked: len(report.Files)}
	for _, f := range report.Files {
		diags := displayFiltered(f.Diagnostics, severityThreshold)
		if len(diags) == 0 {
			continue
		}
		summary.FilesFailed++
		summary.TotalIssues += len(diags)
		for _, d := range diags {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

func buildCheckOutput(report *lint.Report, severityThreshold string) output.CheckOutput {
	out := output.CheckOutput{
		RunID:   uuid.NewString(),
		Summary: summarize(report, severityThreshold),
	}
	for _, f := range report.Files {
		fileResult := output.CheckFileResult{
			Path:   f.Path,
			Locale: f.Locale,
		}
		for _, d := range displayFiltered(f.Diagnostics, severityThreshold) {
			fileResult.Diagnostics = append(fileResult.Diagnostics, output.CheckDiagnostic{
				RuleID:   d.RuleID,
				Kind:     d.Kind,
				Severity: d.Severity.String(),
				Key:      d.Key,
				Message:  d.Message,
			})
		}
		out.Files = append(out.Files, fileResult)
	}
	return out
}
