// Package logger provides structured logging for the bridge.
package logger

import (
	"log/slog"
	"unicode/utf8"
)

// MaxAttrLen caps the length of string attributes in log output.
// Editor responses for large operations can run to megabytes; logging
// them whole would drown everything else.
const MaxAttrLen = 2048

// truncateAttr caps long string attributes, recursing into groups.
func truncateAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if len(s) > MaxAttrLen {
			return slog.String(a.Key, Truncate(s, MaxAttrLen))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = truncateAttr(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

// Truncate shortens s to at most n bytes without splitting a UTF-8
// sequence, appending an ellipsis marker when anything was cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return "..."
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
