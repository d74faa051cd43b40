package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"group", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "TR01")
	assert.Contains(t, output, "TR02")
	assert.Contains(t, output, "translation.empty-value")
	assert.Contains(t, output, "translation.plural-suffix-in-value")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	t.Run("matching group", func(t *testing.T) {
		cmd := NewRulesCommand()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--group", "translation"})

		err := cmd.Execute()
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "TR01")
	})

	t.Run("unknown group is empty", func(t *testing.T) {
		cmd := NewRulesCommand()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--group", "formatting"})

		err := cmd.Execute()
		require.NoError(t, err)

		assert.NotContains(t, buf.String(), "TR01")
	})
}

func TestRulesCommand_JSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, len(result.Rules), result.Count)
	assert.GreaterOrEqual(t, result.Count, 2)

	ids := make(map[string]bool)
	for _, r := range result.Rules {
		ids[r.ID] = true
	}
	assert.True(t, ids["TR01"])
	assert.True(t, ids["TR02"])
}

func TestRulesCommand_ShowRule(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"TR02"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "TR02")
	assert.Contains(t, output, "translation.plural-suffix-in-value")
	assert.Contains(t, output, "Why This Matters")
	assert.Contains(t, output, "suffixes")
}

func TestRulesCommand_ShowRuleNotFound(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"XX99"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTruncateOneLine(t *testing.T) {
	assert.Equal(t, "short", truncateOneLine("short", 10))
	assert.Equal(t, "multi line", truncateOneLine("multi\nline", 20))
	assert.Equal(t, "lon...", truncateOneLine("long text here", 6))
}
