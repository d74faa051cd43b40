package output

// CheckSummary aggregates counts for a check run.
type CheckSummary struct {
	FilesChecked int `json:"files_checked"`
	FilesFailed  int `json:"files_failed"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
	Hints        int `json:"hints"`
}

// CheckDiagnostic is a single finding in JSON output.
type CheckDiagnostic struct {
	RuleID   string `json:"rule_id,omitempty"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Key      string `json:"key"`
	Message  string `json:"message"`
}

// CheckFileResult holds the findings of one file in JSON output.
type CheckFileResult struct {
	Path        string            `json:"path"`
	Locale      string            `json:"locale,omitempty"`
	Diagnostics []CheckDiagnostic `json:"diagnostics,omitempty"`
}

// CheckOutput is the machine-readable result of a check run.
type CheckOutput struct {
	RunID   string            `json:"run_id"`
	Summary CheckSummary      `json:"summary"`
	Files   []CheckFileResult `json:"files"`
}
