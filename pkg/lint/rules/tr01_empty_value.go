package rules

import (
	"strings"

	"github.com/leapstack-labs/i18nlint/pkg/lint"
)

func init() {
	lint.Register(EmptyValue)
}

// EmptyValue flags translation values that are the empty string.
var EmptyValue = lint.RuleDef{
	ID:          "TR01",
	Name:        "translation.empty-value",
	Group:       "translation",
	Kind:        lint.KindEmptyTranslation,
	Description: "Translation value must not be an empty string.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"trim"},
	Check:       checkEmptyValue,

	Rationale: `An empty translation renders as nothing in the UI, which usually means
the string was scaffolded but never translated. Whitespace-only values are not
flagged by default: they can be intentional placeholders, and only the exact
empty string is treated as untranslated. Set the "trim" option to true to
treat whitespace-only values as empty too.`,

	BadExample: `{
  "welcome": "Welcome",
  "goodbye": ""
}`,

	GoodExample: `{
  "welcome": "Welcome",
  "goodbye": "Goodbye"
}`,

	Fix: "Provide the missing translation, or remove the key until it can be translated.",
}

func checkEmptyValue(key, value string, opts map[string]any) []lint.Diagnostic {
	if lint.GetBoolOption(opts, "trim", false) {
		value = strings.TrimSpace(value)
	}
	if value != "" {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "TR01",
		Kind:     lint.KindEmptyTranslation,
		Severity: lint.SeverityError,
		Key:      key,
		Message:  "translation value is an empty string",
	}}
}
