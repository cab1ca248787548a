package report

import (
	"strings"
)

// suggestion pairs a recognizer with the remediation steps it proposes.
// Categories are checked in order and the first match wins, so the more
// specific patterns must precede the broader ones.
type suggestion struct {
	match   func(typeName, msg string) bool
	actions []string
}

var suggestions = []suggestion{
	{
		match: typeOrMessage("nil pointer", "invalid memory address", "nullpointer"),
		actions: []string{
			"Check for nil values before dereferencing pointers or interfaces",
			"Validate inputs at the boundary where the value enters the system",
			"Consider returning a typed error instead of allowing a nil to propagate",
		},
	},
	{
		match: typeOrMessage("interface conversion", "type assertion", "classcast"),
		actions: []string{
			"Use the two-value form of type assertion to detect mismatches",
			"Verify the concrete type produced by the factory or decoder involved",
			"Review recent changes to the interfaces and types being converted",
		},
	},
	{
		match: typeOrMessage("index out of range", "slice bounds", "indexoutofbounds"),
		actions: []string{
			"Check slice and array lengths before indexing",
			"Verify loop bounds and off-by-one conditions",
			"Validate sizes of externally supplied collections before use",
		},
	},
	{
		match: typeOrMessage("no such file", "file does not exist", "filenotfound"),
		actions: []string{
			"Verify the file path and that the file exists",
			"Check permissions on the file and its parent directories",
			"Confirm the working directory matches the path's assumptions",
		},
	},
	{
		match: typeOrMessage("i/o timeout", "broken pipe", "ioexception", "io error", "eof"),
		actions: []string{
			"Check that the underlying stream, file, or socket is still open",
			"Verify network connectivity and remote service availability",
			"Add retry handling for transient I/O failures",
		},
	},
	{
		match: typeOrMessage("sql", "database", "constraint", "duplicate key"),
		actions: []string{
			"Verify database connectivity and credentials",
			"Check the SQL statement and its parameters",
			"Review schema constraints that the statement may violate",
			"Inspect the database server logs for the corresponding error",
		},
	},
	{
		match: typeOrMessage("invalid argument", "illegal argument", "illegalargument"),
		actions: []string{
			"Validate method parameters before passing them along",
			"Check the documented preconditions of the failing call",
			"Add argument validation at the public API boundary",
		},
	},
	{
		// Message-only patterns: generic connectivity wording appears in
		// messages of many unrelated error types.
		match: func(_, msg string) bool {
			return containsAny(msg, "connection", "timeout")
		},
		actions: []string{
			"Check network connectivity to the remote endpoint",
			"Verify the remote service is running and reachable",
			"Review configured timeout values for the operation",
			"Consider adding retry logic with backoff",
		},
	},
}

var genericActions = []string{
	"Check the application logs for more details",
	"Review code around the failure site",
	"Verify environment configuration",
	"Add diagnostic logging around the problematic area",
}

// SuggestActions proposes remediation steps for err based on its dynamic
// type name and message. The result is never empty: unrecognized errors
// receive a generic checklist.
func SuggestActions(err error) []string {
	if err == nil {
		return genericActions
	}

	typ := strings.ToLower(typeName(err))
	msg := strings.ToLower(err.Error())

	for _, s := range suggestions {
		if s.match(typ, msg) {
			return s.actions
		}
	}

	return genericActions
}

func typeOrMessage(patterns ...string) func(typeName, msg string) bool {
	return func(typ, msg string) bool {
		return containsAny(typ, patterns...) || containsAny(msg, patterns...)
	}
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}

	return false
}
