package lint

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/i18nlint/pkg/jsontree"
)

// Analyzer runs registered lint rules against translation trees.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeTree runs all enabled rules against every string leaf of the tree.
// Diagnostics are returned in traversal order; for a single leaf, rules fire
// in ID order.
func (a *Analyzer) AnalyzeTree(root *jsontree.Node) []Diagnostic {
	if root == nil {
		return nil
	}

	rules := a.enabledRules()
	if len(rules) == 0 {
		return nil
	}

	var diagnostics []Diagnostic
	jsontree.Walk(root, func(key, value string) {
		for _, rule := range rules {
			opts := a.config.GetRuleOptions(rule.ID())
			diags := rule.CheckLeaf(key, value, opts)

			// Apply severity overrides
			for i := range diags {
				diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
			}

			diagnostics = append(diagnostics, diags...)
		}
	})

	return diagnostics
}

// AnalyzeContent decodes raw JSON content and analyzes it. A decode failure
// produces a single whole-file decode-error diagnostic instead of aborting.
func (a *Analyzer) AnalyzeContent(content []byte) []Diagnostic {
	root, err := jsontree.Decode(content)
	if err != nil {
		return []Diagnostic{{
			Kind:     KindDecodeError,
			Severity: SeverityError,
			Key:      FileKey,
			Message:  fmt.Sprintf("invalid JSON: %v", err),
		}}
	}
	return a.AnalyzeTree(root)
}

// AnalyzeFile reads and analyzes one translation file. An unreadable file is
// reported the same way as a non-decodable one: a single whole-file finding.
func (a *Analyzer) AnalyzeFile(path string) FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{
			Path:   path,
			Locale: LocaleFromPath(path),
			Diagnostics: []Diagnostic{{
				Kind:     KindDecodeError,
				Severity: SeverityError,
				Key:      FileKey,
				Message:  fmt.Sprintf("failed to read file: %v", err),
			}},
		}
	}

	return FileResult{
		Path:        path,
		Locale:      LocaleFromPath(path),
		Diagnostics: a.AnalyzeContent(content),
	}
}

func (a *Analyzer) enabledRules() []LeafRule {
	var rules []LeafRule
	for _, rule := range GetAllLeafRules() {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}
