package view

import (
	"html/template"
	"strconv"
	"strings"
)

// Split breaks a delimited string into trimmed, non-empty parts.
// Argument order follows template pipelines: {{.Synonyms | split "|"}}.
func Split(sep, s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join is strings.Join with the separator first, for use after split in a pipeline.
func Join(sep string, items []string) string {
	return strings.Join(items, sep)
}

// FormatScore renders a score with the shortest exact representation.
// A nil pointer renders as an empty string.
func FormatScore(v interface{}) string {
	switch s := v.(type) {
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case *float64:
		if s == nil {
			return ""
		}
		return strconv.FormatFloat(*s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"split": Split,
		"join":  Join,
		"score": FormatScore,
	}
}
