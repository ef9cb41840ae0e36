package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldSyntax = "syntax"
	FieldFormat = "format"
	FieldConfig = "config"
	FieldRules  = "rules"

	// Run fields.
	FieldRunID    = "run_id"
	FieldOutcome  = "outcome"
	FieldProgress = "progress"
	FieldFindings = "findings"
	FieldPassed   = "passed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldEnabled     = "enabled"
	FieldDescription = "description"
	FieldTags        = "tags"
)
