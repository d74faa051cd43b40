package lint

// FileResult holds the findings for a single translation file.
type FileResult struct {
	Path        string       `json:"path"`
	Locale      string       `json:"locale,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// OK reports whether the file produced no findings.
func (f FileResult) OK() bool {
	return len(f.Diagnostics) == 0
}

// Report is the aggregated result of one validation run. Files appear in the
// same order they were supplied, regardless of how they were processed.
type Report struct {
	Files []FileResult `json:"files"`
}

// OK reports whether every file passed with zero findings.
func (r *Report) OK() bool {
	for _, f := range r.Files {
		if !f.OK() {
			return false
		}
	}
	return true
}

// TotalFindings returns the number of findings across all files.
func (r *Report) TotalFindings() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Diagnostics)
	}
	return total
}

// FailedFiles returns only the files that produced findings, in report order.
func (r *Report) FailedFiles() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}
