package i18n

import (
	"fmt"
	"strings"
)

// Substitute replaces every %(name)s placeholder in template with the
// stringified value from vars. The scan is a single left-to-right pass:
// inserted values are never re-scanned, so a variable containing a
// placeholder cannot trigger recursive substitution. Placeholders whose
// name is absent from vars are left as literal text.
func Substitute(template string, vars map[string]any) string {
	if !strings.Contains(template, "%(") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, "%(")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start+2:], ")s")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}

		name := rest[start+2 : start+2+end]
		b.WriteString(rest[:start])

		if val, ok := vars[name]; ok {
			b.WriteString(fmt.Sprint(val))
		} else {
			// Unknown name: keep the placeholder literal.
			b.WriteString(rest[start : start+2+end+2])
		}
		rest = rest[start+2+end+2:]
	}
}
