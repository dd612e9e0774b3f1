// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldSettings   = "settings"
	FieldCategories = "categories"

	// Generation fields.
	FieldGroup       = "group"
	FieldRule        = "rule"
	FieldPages       = "pages"
	FieldRulesTotal  = "rules_total"
	FieldRulesFailed = "rules_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
