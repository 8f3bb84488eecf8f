package validation

import "fmt"

// Result accumulates business-rule violations for one operation. Every rule
// runs and appends its messages; nothing short-circuits, so the caller gets
// the complete ordered list in one pass.
type Result struct {
	violations []string
}

func (r *Result) Add(message string) {
	r.violations = append(r.violations, message)
}

func (r *Result) Addf(format string, args ...any) {
	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}

func (r *Result) Merge(other Result) {
	r.violations = append(r.violations, other.violations...)
}

func (r *Result) OK() bool {
	return len(r.violations) == 0
}

func (r *Result) Violations() []string {
	return r.violations
}
