package runner

import (
	"sync"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// Constant tags attached to every Finding.
const (
	// CtxCSS marks findings produced by the stylesheet linter.
	CtxCSS = "CSS"

	// RuleProcParser tags findings raised by the parser stage.
	RuleProcParser = "postcss-scss"
	// RuleProcStyle tags findings raised by style rules.
	RuleProcStyle = "stylelint"

	// RuleIDWildcard is used for parse and unrecognized failures.
	RuleIDWildcard = "*"
	// RuleIDUnknown is used when a message carries no rule suffix.
	RuleIDUnknown = "unknown"
)

// Finding is one normalized lint problem.
type Finding struct {
	Ctx      string          `json:"ctx"`
	Filename string          `json:"filename"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Message  string          `json:"message"`
	RuleProc string          `json:"ruleProc"`
	RuleID   string          `json:"ruleId"`
	Severity config.Severity `json:"severity"`
}

// Report accumulates findings across one or more runs.
//
// A filename is a key of Sources iff at least one Finding names it.
// Findings are only ever appended.
type Report struct {
	// runMu serializes runs that share the report.
	runMu sync.Mutex
	// mu guards Sources and Findings.
	mu sync.Mutex

	// Sources maps a relative filename to the full text that was linted.
	Sources map[string]string `json:"sources"`

	// Findings are stored in the order they were recorded.
	Findings []Finding `json:"findings"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Sources: make(map[string]string)}
}

// Len returns the number of recorded findings.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Findings)
}

// Files returns the filenames that have at least one finding, in first-seen order.
func (r *Report) Files() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(r.Sources))
	files := make([]string, 0, len(r.Sources))
	for _, f := range r.Findings {
		if _, ok := seen[f.Filename]; ok {
			continue
		}
		seen[f.Filename] = struct{}{}
		files = append(files, f.Filename)
	}
	return files
}

// ByFile returns the findings recorded for filename.
func (r *Report) ByFile(filename string) []Finding {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Finding
	for _, f := range r.Findings {
		if f.Filename == filename {
			out = append(out, f)
		}
	}
	return out
}

// Source returns the text stored for filename.
func (r *Report) Source(filename string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src, ok := r.Sources[filename]
	return src, ok
}

// Counts returns the number of error and warning findings.
func (r *Report) Counts() (errors, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.Findings {
		if f.Severity == config.SeverityWarning {
			warnings++
		} else {
			errors++
		}
	}
	return errors, warnings
}

// record appends findings for name and stores its source.
func (r *Report) record(name, source string, findings []Finding) {
	if len(findings) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Sources == nil {
		r.Sources = make(map[string]string)
	}
	r.Sources[name] = source
	r.Findings = append(r.Findings, findings...)
}
