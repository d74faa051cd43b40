package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/i18nlint/internal/cli/config"
	"github.com/leapstack-labs/i18nlint/internal/cli/output"
	"github.com/leapstack-labs/i18nlint/pkg/core"
	"github.com/leapstack-labs/i18nlint/pkg/lint"
)

func writeJSONFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"translation-dirs", "format", "disable", "rule", "severity", "jobs"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCheckCommand_CleanFilesPass(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONFile(t, dir, "en.json", `{"greeting": "Hello", "item_one": "One item", "item_other": "Many items"}`)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "passed")
}

func TestCheckCommand_FindingsFail(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONFile(t, dir, "de.json", `{"greeting": "", "count": "Eins_one"}`)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "empty-translation")
	assert.Contains(t, out, "plural-suffix-in-value")
	assert.Contains(t, out, `"greeting"`)
	assert.Contains(t, out, `"count"`)
	assert.Contains(t, out, "Summary:")
}

func TestCheckCommand_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONFile(t, dir, "fr.json", `{"greeting": `)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "decode-error")
	assert.Contains(t, buf.String(), `"FILE"`)
}

func TestCheckCommand_NoArgsPass(t *testing.T) {
	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestCheckCommand_SkipsNonJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
}

func TestCheckCommand_DisableRule(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONFile(t, dir, "en.json", `{"count": "items_other"}`)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--disable", "TR02", path})

	require.NoError(t, cmd.Execute())
}

func TestCheckCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONFile(t, dir, "en.json", `{"greeting": ""}`)

	cmd := NewCheckCommand()
	// The root command silences cobra's error echo and usage text; without
	// it the buffer would hold more than the JSON document.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "json", path})

	err := cmd.Execute()
	require.Error(t, err)

	var result output.CheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.Summary.FilesChecked)
	assert.Equal(t, 1, result.Summary.FilesFailed)
	assert.Equal(t, 1, result.Summary.TotalIssues)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Diagnostics, 1)
	assert.Equal(t, "TR01", result.Files[0].Diagnostics[0].RuleID)
	assert.Equal(t, "greeting", result.Files[0].Diagnostics[0].Key)
}

func TestFilterJSONFiles(t *testing.T) {
	paths := filterJSONFiles([]string{"a.json", "b.txt", "c.JSON", "d.jsonl", "e"})
	assert.Equal(t, []string{"a.json", "c.JSON"}, paths)
}

func TestFilterByTranslationDirs(t *testing.T) {
	dir := t.TempDir()
	locales := filepath.Join(dir, "public", "locales")
	require.NoError(t, os.MkdirAll(locales, 0o755))

	inside := filepath.Join(locales, "en.json")
	nested := filepath.Join(locales, "en", "common.json")
	outside := filepath.Join(dir, "package.json")

	t.Run("keeps files under configured dirs", func(t *testing.T) {
		got := filterByTranslationDirs([]string{inside, nested, outside}, []string{locales})
		assert.Equal(t, []string{inside, nested}, got)
	})

	t.Run("no dirs is a pass-through", func(t *testing.T) {
		got := filterByTranslationDirs([]string{inside, outside}, nil)
		assert.Equal(t, []string{inside, outside}, got)
	})

	t.Run("sibling prefix does not match", func(t *testing.T) {
		sibling := filepath.Join(dir, "public", "locales-old", "en.json")
		got := filterByTranslationDirs([]string{sibling}, []string{locales})
		assert.Empty(t, got)
	})
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{})

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("TR01"))
		assert.False(t, cfg.IsDisabled("TR02"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{Disable: []string{"TR01"}})

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("TR01"))
		assert.False(t, cfg.IsDisabled("TR02"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{Rules: []string{"TR01"}})

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("TR01"))
		for _, r := range lint.GetAllLeafRules() {
			if r.ID() != "TR01" {
				assert.True(t, cfg.IsDisabled(r.ID()), "rule %q should be disabled", r.ID())
			}
		}
	})

	t.Run("project config disabled rules", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"TR02"},
			},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("TR02"))
		assert.False(t, cfg.IsDisabled("TR01"))
	})

	t.Run("project config severity overrides", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Severity: map[string]string{
					"TR01": "warning",
					"TR02": "hint",
				},
			},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		require.NotNil(t, cfg)
		assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("TR01", core.SeverityError))
		assert.Equal(t, core.SeverityHint, cfg.GetSeverity("TR02", core.SeverityError))
	})

	t.Run("project config rule options", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Rules: map[string]map[string]any{
					"TR02": {"suffixes": []string{"_plural"}},
				},
			},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		require.NotNil(t, cfg)
		opts := cfg.GetRuleOptions("TR02")
		require.NotNil(t, opts)
		assert.Equal(t, []string{"_plural"}, opts["suffixes"])
	})
}

func TestBuildCheckOutput_SummaryMatchesFilteredFiles(t *testing.T) {
	report := &lint.Report{Files: []lint.FileResult{
		{
			Path: "en.json",
			Diagnostics: []lint.Diagnostic{
				{RuleID: "TR01", Severity: lint.SeverityError},
				{RuleID: "ZZ01", Severity: lint.SeverityHint},
			},
		},
		{
			Path: "de.json",
			Diagnostics: []lint.Diagnostic{
				{RuleID: "ZZ01", Severity: lint.SeverityHint},
			},
		},
	}}

	out := buildCheckOutput(report, "error")

	// The summary must describe exactly what the files array shows: the
	// hint-only file drops out entirely.
	assert.Equal(t, 2, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.FilesFailed)
	assert.Equal(t, 1, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 0, out.Summary.Hints)

	shown := 0
	for _, f := range out.Files {
		shown += len(f.Diagnostics)
	}
	assert.Equal(t, out.Summary.TotalIssues, shown)
}

func TestDisplayFiltered(t *testing.T) {
	diags := []lint.Diagnostic{
		{RuleID: "TR01", Severity: lint.SeverityError},
		{RuleID: "ZZ01", Severity: lint.SeverityHint},
	}

	t.Run("no threshold keeps everything", func(t *testing.T) {
		assert.Len(t, displayFiltered(diags, ""), 2)
	})

	t.Run("error threshold hides hints", func(t *testing.T) {
		got := displayFiltered(diags, "error")
		require.Len(t, got, 1)
		assert.Equal(t, "TR01", got[0].RuleID)
	})

	t.Run("invalid threshold keeps everything", func(t *testing.T) {
		assert.Len(t, displayFiltered(diags, "loud"), 2)
	})
}
