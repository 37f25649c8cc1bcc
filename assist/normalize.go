package assist

import (
	"regexp"
	"strings"
)

var jsonFence = regexp.MustCompile("(?i)```json")

// StripFences removes code fence markers a model may wrap JSON in.
//
// Every "```json" (any case) and "```" is removed until none remain, and
// surrounding whitespace is trimmed only if something was removed. Text
// without markers is returned unchanged. The JSON itself is never inspected.
func StripFences(text string) string {
	out := text
	for {
		next := jsonFence.ReplaceAllLiteralString(out, "")
		next = strings.ReplaceAll(next, "```", "")
		if next == out {
			break
		}
		out = next
	}

	if out == text {
		return text
	}
	return strings.TrimSpace(out)
}
