// Package jsonextract pulls the first JSON value out of free-form model
// output. Generative APIs are asked to return bare JSON but routinely wrap
// it in code fences or prose; callers strip that here before unmarshalling.
package jsonextract

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when no complete JSON value of the requested kind
// exists in the input.
var ErrNoJSON = errors.New("no JSON value found in text")

// Array returns the first balanced `[...]` in raw, after fence stripping.
func Array(raw string) (string, error) {
	return extract(StripFences(raw), '[', ']')
}

// Object returns the first balanced `{...}` in raw, after fence stripping.
func Object(raw string) (string, error) {
	return extract(StripFences(raw), '{', '}')
}

// StripFences removes markdown code-fence markers, including the "json"
// language tag in any case variant.
func StripFences(raw string) string {
	for _, marker := range []string{"```json", "```JSON", "``` json", "```"} {
		raw = strings.ReplaceAll(raw, marker, "")
	}
	return strings.TrimSpace(raw)
}

// extract scans for the first occurrence of opening and returns the
// substring up to its balancing closing bracket. Brackets inside JSON
// string literals (and escaped quotes inside those) do not count toward
// the balance, so values like ["a]b"] survive intact.
func extract(s string, opening, closing byte) (string, error) {
	start := strings.IndexByte(s, opening)
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	// Opened but never closed: treat as not found rather than returning a
	// partial value.
	return "", ErrNoJSON
}
