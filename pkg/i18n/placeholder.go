package i18n

import (
	"fmt"
	"strings"
)

// M holds named placeholder values.
type M map[string]any

// ReplacePlaceholders replaces {{name}} placeholders in template with values
// from placeholders. Whitespace inside the braces is ignored. Placeholders
// without a value are left unchanged.
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			break
		}
		end += start + 2

		name := strings.TrimSpace(rest[start+2 : end])
		b.WriteString(rest[:start])
		if value, ok := placeholders[name]; ok {
			b.WriteString(fmt.Sprint(value))
		} else {
			b.WriteString(rest[start : end+2])
		}
		rest = rest[end+2:]
	}
	b.WriteString(rest)

	return b.String()
}

func mergeArgs(args ...M) M {
	if len(args) == 0 {
		return nil
	}
	merged := make(M)
	for _, a := range args {
		for k, v := range a {
			merged[k] = v
		}
	}
	return merged
}
