package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/i18nlint/pkg/lint"
	_ "github.com/leapstack-labs/i18nlint/pkg/lint/rules" // register rules
)

func TestTR02_PluralSuffix(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantDiag   bool
		wantKey    string
		wantSuffix string
	}{
		{
			name:       "value ends with _other",
			json:       `{"{{count}} items_other": "{{count}} items_other"}`,
			wantDiag:   true,
			wantKey:    "{{count}} items_other",
			wantSuffix: `"_other"`,
		},
		{
			name:       "value ends with _one",
			json:       `{"count": "{{count}} item_one"}`,
			wantDiag:   true,
			wantKey:    "count",
			wantSuffix: `"_one"`,
		},
		{
			name:       "value ends with _zero",
			json:       `{"empty": "nothing here_zero"}`,
			wantDiag:   true,
			wantKey:    "empty",
			wantSuffix: `"_zero"`,
		},
		{
			name:       "value ends with _two",
			json:       `{"pair": "both_two"}`,
			wantDiag:   true,
			wantSuffix: `"_two"`,
			wantKey:    "pair",
		},
		{
			name:       "value ends with _few",
			json:       `{"some": "a handful_few"}`,
			wantDiag:   true,
			wantKey:    "some",
			wantSuffix: `"_few"`,
		},
		{
			name:       "value ends with _many",
			json:       `{"lots": "so many_many"}`,
			wantDiag:   true,
			wantKey:    "lots",
			wantSuffix: `"_many"`,
		},
		{
			name:     "suffix in key only",
			json:     `{"{{count}} items_one": "{{count}} item"}`,
			wantDiag: false,
		},
		{
			name:     "word ending in one without underscore",
			json:     `{"note": "This is the only one"}`,
			wantDiag: false,
		},
		{
			name:     "suffix in the middle of the value",
			json:     `{"hint": "the _other side of the street"}`,
			wantDiag: false,
		},
		{
			name:     "case sensitive match",
			json:     `{"shout": "ITEMS_OTHER"}`,
			wantDiag: false,
		},
		{
			name:     "empty value cannot match",
			json:     `{"goodbye": ""}`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagsByRule(analyzeJSON(t, lint.NewConfig(), tt.json), "TR02")

			if tt.wantDiag {
				require.Len(t, diags, 1, "expected exactly one TR02 finding")
				assert.Equal(t, lint.KindPluralSuffixInValue, diags[0].Kind)
				assert.Equal(t, tt.wantKey, diags[0].Key)
				assert.Contains(t, diags[0].Message, tt.wantSuffix)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestTR02_AtMostOneFindingPerLeaf(t *testing.T) {
	// Suffixes are mutually exclusive as trailing substrings; the rule stops
	// at the first match regardless.
	diags := diagsByRule(analyzeJSON(t, lint.NewConfig(),
		`{"k": "text_one_other"}`), "TR02")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"_other"`)
}

func TestTR02_CustomSuffixes(t *testing.T) {
	cfg := lint.NewConfig().
		SetRuleOptions("TR02", map[string]any{
			"suffixes": []string{"_plural"},
		})

	t.Run("custom suffix flagged", func(t *testing.T) {
		diags := diagsByRule(analyzeJSON(t, cfg, `{"k": "items_plural"}`), "TR02")
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, `"_plural"`)
	})

	t.Run("default suffixes replaced", func(t *testing.T) {
		diags := diagsByRule(analyzeJSON(t, cfg, `{"k": "items_other"}`), "TR02")
		assert.Empty(t, diags)
	})
}

func TestTR02_SuffixAmongTranslated(t *testing.T) {
	input := `{"{{count}} items_one":"{{count}} item","{{count}} items_other":"{{count}} items_other"}`
	diags := analyzeJSON(t, lint.NewConfig(), input)

	require.Len(t, diags, 1)
	assert.Equal(t, "TR02", diags[0].RuleID)
	assert.Equal(t, "{{count}} items_other", diags[0].Key)
	assert.Contains(t, diags[0].Message, `"_other"`)
}
