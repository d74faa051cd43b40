package config

// Defaults applied before the config file, environment and flags are loaded.
const (
	// DefaultOutput is the default output format.
	DefaultOutput = "auto"

	// DefaultJobs means one validation worker per CPU.
	DefaultJobs = 0
)

// Config holds the resolved i18nlint configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	// TranslationDirs restricts checked files to paths under these
	// directories. Empty means every supplied path is checked.
	TranslationDirs []string `koanf:"translation_dirs"`

	// OutputFormat selects the output mode: auto, text, markdown or json.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Jobs bounds concurrent per-file validation (0 = NumCPU).
	Jobs int `koanf:"jobs"`

	// Lint holds rule configuration.
	Lint *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory the config file was found in (or the
	// working directory). Not loaded from config; set by the loader.
	ProjectRoot string `koanf:"-"`
}

// LintConfig tunes individual rules.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity overrides rule severities by ID, e.g. {"TR02": "warning"}.
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options by ID,
	// e.g. {"TR02": {"suffixes": ["_plural"]}}.
	Rules map[string]map[string]any `koanf:"rules"`
}
