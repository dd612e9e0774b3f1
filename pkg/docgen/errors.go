package docgen

import (
	"fmt"
	"strings"
)

// RuleError pairs a rule name with the error that broke its page.
type RuleError struct {
	Rule string
	Err  error
}

// ErrorList accumulates per-rule failures across a documentation run. A
// broken example never aborts the run; it is recorded here so one
// invocation surfaces every broken rule at once.
type ErrorList struct {
	errs []RuleError
}

// Add records a failure for the named rule.
func (l *ErrorList) Add(rule string, err error) {
	l.errs = append(l.errs, RuleError{Rule: rule, Err: err})
}

// Empty returns true if no failure was recorded.
func (l *ErrorList) Empty() bool {
	return len(l.errs) == 0
}

// Len returns the number of recorded failures.
func (l *ErrorList) Len() int {
	return len(l.errs)
}

// All returns the recorded failures in insertion order.
func (l *ErrorList) All() []RuleError {
	return l.errs
}

// Err flattens the list into a single error, or nil when empty.
func (l *ErrorList) Err() error {
	if l.Empty() {
		return nil
	}

	var b strings.Builder
	b.WriteString("failed to generate documentation pages for the following rules:\n")
	for _, re := range l.errs {
		fmt.Fprintf(&b, "- %s: %v\n", re.Rule, re.Err)
	}
	return fmt.Errorf("%s", b.String())
}
