package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// SanitizeText strips invalid UTF-8 sequences and NUL bytes from
// untrusted text before it reaches tokenization or Postgres.
func SanitizeText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}

// Words segments text into lower-cased word tokens using Unicode word
// boundaries. Punctuation and whitespace tokens are dropped.
func Words(text string) []string {
	var result []string
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		if !isWordlike(token) {
			continue
		}
		result = append(result, strings.ToLower(token))
	}
	return result
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	count := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		if isWordlike(tokens.Value()) {
			count++
		}
	}
	return count
}

func isWordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Excerpt returns the text around the byte span [start, end), padded by
// radius bytes on each side and snapped to rune boundaries. Truncated
// ends are marked with an ellipsis.
func Excerpt(text string, start, end, radius int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if end < start {
		end = start
	}

	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}

	excerpt := strings.TrimSpace(text[lo:hi])
	if lo > 0 {
		excerpt = "..." + excerpt
	}
	if hi < len(text) {
		excerpt = excerpt + "..."
	}
	return excerpt
}
