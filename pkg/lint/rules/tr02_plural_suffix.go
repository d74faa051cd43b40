package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/i18nlint/pkg/lint"
)

func init() {
	lint.Register(PluralSuffix)
}

// defaultPluralSuffixes is the fixed set of CLDR plural category markers the
// i18next key-naming convention appends to keys. Order is only observable in
// the message text; no value can end with two different suffixes at once.
var defaultPluralSuffixes = []string{"_zero", "_one", "_two", "_few", "_many", "_other"}

// PluralSuffix flags translation values that end with a plural category
// suffix. The suffix belongs in the key name, not in the rendered text.
var PluralSuffix = lint.RuleDef{
	ID:          "TR02",
	Name:        "translation.plural-suffix-in-value",
	Group:       "translation",
	Kind:        lint.KindPluralSuffixInValue,
	Description: "Translation value must not end with a plural category suffix.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"suffixes"},
	Check:       checkPluralSuffix,

	Rationale: `Plural category suffixes (_one, _other, ...) are how i18next selects the
right form at lookup time, so they belong in the key name. A suffix at the end
of the value text is almost always a copy-paste slip that leaks the marker
into the rendered UI.`,

	BadExample: `{
  "{{count}} items_other": "{{count}} items_other"
}`,

	GoodExample: `{
  "{{count}} items_one": "{{count}} item",
  "{{count}} items_other": "{{count}} items"
}`,

	Fix: "Move the suffix into the key name and remove it from the value text.",
}

func checkPluralSuffix(key, value string, opts map[string]any) []lint.Diagnostic {
	suffixes := lint.GetStringSliceOption(opts, "suffixes", defaultPluralSuffixes)

	// Trailing-substring test only: a suffix in the middle of the text is not
	// a defect, and matching is case-sensitive with no word-boundary check.
	for _, suffix := range suffixes {
		if suffix == "" || !strings.HasSuffix(value, suffix) {
			continue
		}
		return []lint.Diagnostic{{
			RuleID:   "TR02",
			Kind:     lint.KindPluralSuffixInValue,
			Severity: lint.SeverityError,
			Key:      key,
			Message:  fmt.Sprintf("contains %q (should be in key, not value)", suffix),
		}}
	}
	return nil
}
