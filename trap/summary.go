package trap

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
)

// maxSummaryRunes bounds how much of a string value appears in logs.
const maxSummaryRunes = 50

// sensitivePatterns marks type names whose values must never be rendered.
// Matching is case-insensitive against the full type name.
var sensitivePatterns = []string{
	"user",
	"password",
	"credential",
	"payment",
	"credit",
	"account",
}

// summarize renders a compact, log-safe description of a value.
//
// Nil renders as "null". Values of sensitive types, arrays, and large
// slices or maps render opaquely as "Type@hash" so their contents never
// reach the logs. Long strings are truncated with an ellipsis.
func summarize(v any) string {
	if v == nil {
		return "null"
	}

	t := reflect.TypeOf(v)
	if sensitive(t.String()) {
		return opaque(t.String(), v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		return opaque(t.String(), v)

	case reflect.Slice, reflect.Map:
		if rv.Len() > 5 {
			return opaque(t.String(), v)
		}

	case reflect.String:
		return truncate(rv.String())
	}

	return truncate(fmt.Sprint(v))
}

func sensitive(typeName string) bool {
	name := strings.ToLower(typeName)
	for _, p := range sensitivePatterns {
		if strings.Contains(name, p) {
			return true
		}
	}

	return false
}

// opaque renders "Type@hash" without exposing the value. The hash is an
// FNV-1a digest of the value's formatted form, stable within and across
// runs so repeated calls with the same value correlate in logs.
func opaque(typeName string, v any) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%v", v)

	return fmt.Sprintf("%s@%08x", strings.TrimPrefix(typeName, "*"), h.Sum32())
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryRunes {
		return s
	}

	return string(runes[:maxSummaryRunes-3]) + "..."
}
