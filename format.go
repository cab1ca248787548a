package glint

import (
	"fmt"
	"strings"
)

const placeholder = "{}"

// Format substitutes each "{}" placeholder in template with the
// corresponding argument, left to right.
//
// Surplus arguments are ignored, and placeholders without a matching
// argument remain literal. A nil argument renders as "null"; everything
// else renders with [fmt.Sprint].
func Format(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, placeholder) {
		return template
	}

	var sb strings.Builder

	rest := template
	for _, arg := range args {
		idx := strings.Index(rest, placeholder)
		if idx < 0 {
			break
		}

		sb.WriteString(rest[:idx])
		sb.WriteString(argString(arg))
		rest = rest[idx+len(placeholder):]
	}

	sb.WriteString(rest)

	return sb.String()
}

func argString(v any) string {
	if v == nil {
		return "null"
	}

	return fmt.Sprint(v)
}
