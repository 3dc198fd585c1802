package ocr

import "strings"

// Snippet returns a shortened version of text for logging.
func Snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// CollapseWhitespace flattens newlines/tabs and squeezes runs of
// spaces. Used for log lines only; the cleaner and parser operate on
// the raw newline-delimited text.
func CollapseWhitespace(t string) string {
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	return strings.Join(strings.Fields(t), " ")
}
