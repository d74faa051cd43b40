package lint

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// LocaleFromPath derives the locale tag from a translation file's base name,
// e.g. "locales/en-US.json" -> "en-US". Returns the canonical BCP 47 form, or
// an empty string when the base name is not a recognizable language tag
// (common for namespace files like "common.json").
func LocaleFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return ""
	}

	tag, err := language.Parse(name)
	if err != nil {
		return ""
	}

	// Parse accepts any well-formed subtag, so "common.json" would otherwise
	// come back as locale "common". Require a confidently known base language.
	if _, conf := tag.Base(); conf < language.High {
		return ""
	}
	return tag.String()
}
