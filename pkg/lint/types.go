// Package lint provides data-driven validation of translation resource files.
// Rules are registered from init() functions in the rules subpackage and run
// by the Analyzer against every string leaf of a decoded translation file.
package lint

import (
	"github.com/leapstack-labs/i18nlint/pkg/core"
)

// Severity is re-exported from core so rule packages only need one import.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity converts a string to a Severity value.
func ParseSeverity(s string) (Severity, bool) {
	return core.ParseSeverity(s)
}

// Finding kinds. Each rule emits one kind; KindDecodeError is emitted by the
// analyzer itself for files that are not valid JSON.
const (
	KindEmptyTranslation    = "empty-translation"
	KindPluralSuffixInValue = "plural-suffix-in-value"
	KindDecodeError         = "decode-error"
)

// FileKey is the display key used for whole-file findings such as decode
// errors, which are not tied to any translation key.
const FileKey = "FILE"

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "TR01"
	Name        string    // Human-readable name, e.g., "translation.empty-value"
	Group       string    // Category, e.g., "translation"
	Kind        string    // Finding kind this rule emits, e.g., "empty-translation"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // JSON showing the anti-pattern
	GoodExample string // JSON showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects one string leaf and returns diagnostics.
// The key is the nearest enclosing object key of the leaf; opts contains
// rule-specific options from configuration.
type CheckFunc func(key, value string, opts map[string]any) []Diagnostic

// Diagnostic represents a single finding tied to one leaf (or, for decode
// errors, to a whole file). Immutable once created.
type Diagnostic struct {
	RuleID   string   `json:"rule_id,omitempty"`
	Kind     string   `json:"kind"`
	Severity Severity `json:"-"`
	Key      string   `json:"key"`
	Message  string   `json:"message"`
}

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "TR01"
	ID() string

	// Name returns the human-readable name, e.g., "translation.empty-value"
	Name() string

	// Group returns the category, e.g., "translation"
	Group() string

	// Kind returns the finding kind this rule emits.
	Kind() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // JSON showing the anti-pattern
	GoodExample() string // JSON showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// LeafRule analyzes individual string leaves of a translation tree.
type LeafRule interface {
	Rule

	// CheckLeaf inspects one leaf and returns diagnostics.
	// The opts parameter contains rule-specific options from configuration.
	CheckLeaf(key, value string, opts map[string]any) []Diagnostic
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Kind:            r.Kind(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// wrappedRuleDef wraps a RuleDef to implement LeafRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the LeafRule interface.
func WrapRuleDef(def RuleDef) LeafRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                { return w.def.ID }
func (w *wrappedRuleDef) Name() string              { return w.def.Name }
func (w *wrappedRuleDef) Group() string             { return w.def.Group }
func (w *wrappedRuleDef) Kind() string              { return w.def.Kind }
func (w *wrappedRuleDef) Description() string       { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string      { return w.def.ConfigKeys }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckLeaf(key, value string, opts map[string]any) []Diagnostic {
	return w.def.Check(key, value, opts)
}
