package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ardnew/glint/level"
)

// Classify maps an error to the severity a caller should report it at,
// based on its type name and message. The table is fixed:
//
//   - out-of-memory, stack-overflow, linkage, and security failures are
//     [level.Fatal]
//   - SQL, I/O, file, network, and timeout failures are [level.Severe]
//   - illegal/invalid argument, validation, and state failures are
//     [level.Error]
//   - everything else defaults to [level.Error]
//
// An *Error with an explicitly assigned severity keeps it.
func Classify(err error) level.Level {
	if err == nil {
		return level.Error
	}

	var e *Error
	if errors.As(err, &e) && e.severity != level.Error {
		return e.severity
	}

	name := strings.ToLower(fmt.Sprintf("%T %s", err, err.Error()))

	switch {
	case containsAny(name, "outofmemory", "out of memory",
		"stackoverflow", "stack overflow", "linkage", "security"):
		return level.Fatal

	case containsAny(name, "sql", "i/o", "ioerror", "ioexception",
		"file", "network", "timeout"):
		return level.Severe

	case containsAny(name, "illegal", "invalid", "validation",
		"argument", "state"):
		return level.Error

	default:
		return level.Error
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
