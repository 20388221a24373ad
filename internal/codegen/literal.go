package codegen

import (
	"strings"

	"github.com/samber/lo"
)

// pyString renders a free-text value as a Python string literal. Multiline
// text becomes a triple-quoted block; everything else a double-quoted string.
func pyString(s string) string {
	if strings.Contains(s, "\n") {
		return `"""` + s + `"""`
	}
	return `"` + s + `"`
}

// pyList renders an ordered string list as a Python list literal of
// single-quoted items. An empty list renders as [].
func pyList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := lo.Map(items, func(item string, _ int) string {
		return "'" + item + "'"
	})
	return "[" + strings.Join(quoted, ", ") + "]"
}

// pyBool renders a Go bool as a Python boolean literal.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
