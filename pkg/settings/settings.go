// Package settings provides the project severity settings consulted while
// executing documentation examples. The settings value is an explicit,
// read-only handle threaded through the execution harness; it is never a
// process-wide singleton.
package settings

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yaklabco/ruledoc/pkg/diag"
)

// Settings maps diagnostic categories to their configured severity.
type Settings struct {
	mu         sync.RWMutex
	severities map[string]diag.Severity
}

// New creates empty settings.
func New() *Settings {
	return &Settings{
		severities: make(map[string]diag.Severity),
	}
}

// Set assigns the severity for a category. Invalid severities are rejected.
func (s *Settings) Set(category string, sev diag.Severity) error {
	if !sev.IsValid() {
		return fmt.Errorf("invalid severity %q for category %q", sev, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.severities[category] = sev
	return nil
}

// Resolve returns the configured severity for a category. The second return
// is false when the category has no mapping; callers treat that as a setup
// error, not a documentation error.
func (s *Settings) Resolve(category string) (diag.Severity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sev, ok := s.severities[category]
	return sev, ok
}

// Categories returns all mapped categories in sorted order.
func (s *Settings) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.severities))
	for category := range s.severities {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of mapped categories.
func (s *Settings) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.severities)
}
