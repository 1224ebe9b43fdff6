package weapon

import (
	"fmt"
	"strings"
	"unicode"
)

// splitLines splits text into lines that keep their own terminators, so
// concatenating the result reproduces text exactly.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// hasKey reports whether a line starts with the quoted key, ignoring
// surrounding whitespace.
func hasKey(line, key string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), `"`+key+`"`)
}

// tokenEnd returns the end of the whitespace-delimited token starting at
// start. A token opening with a quote runs to its closing quote.
func tokenEnd(line string, start int) int {
	if line[start] == '"' {
		if j := strings.IndexByte(line[start+1:], '"'); j >= 0 {
			return start + 1 + j + 1
		}
	}
	if j := strings.IndexFunc(line[start:], unicode.IsSpace); j >= 0 {
		return start + j
	}
	return len(line)
}

func skipSpace(line string, i int) int {
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	return i
}

// valueSpan locates the value of a key/value line: the second token with
// its surrounding quotes excluded. The returned offsets index into line.
func valueSpan(line string) (start, end int, ok bool) {
	i := skipSpace(line, 0)
	if i == len(line) {
		return 0, 0, false
	}

	i = skipSpace(line, tokenEnd(line, i))
	if i == len(line) {
		return 0, 0, false
	}

	start, end = i, tokenEnd(line, i)
	if end-start >= 2 && line[start] == '"' && line[end-1] == '"' {
		return start + 1, end - 1, true
	}

	// unterminated or unquoted: drop stray quotes at either edge
	for start < end && line[start] == '"' {
		start++
	}
	for end > start && line[end-1] == '"' {
		end--
	}

	return start, end, true
}

// value extracts the unquoted value of a key/value line.
func value(line string) (string, error) {
	start, end, ok := valueSpan(line)
	if !ok {
		return "", fmt.Errorf("%w: no value in %q", ErrMalformedField, strings.TrimSpace(line))
	}
	return line[start:end], nil
}

// replaceValue swaps the value of a key/value line for v. Everything else
// in the line, including its terminator, is kept.
func replaceValue(line, v string) (string, error) {
	start, end, ok := valueSpan(line)
	if !ok {
		return "", fmt.Errorf("%w: no value in %q", ErrMalformedField, strings.TrimSpace(line))
	}
	return line[:start] + v + line[end:], nil
}
