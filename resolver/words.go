package resolver

import (
	"strings"
	"unicode"
)

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// SplitLines splits document text into lines, dropping a trailing \r from each.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// WordAt returns the word containing char. A cursor directly after the last
// character of a word also selects it.
func WordAt(line string, char int) (Identifier, bool) {
	if char < 0 {
		return Identifier{}, false
	}
	if char > len(line) {
		char = len(line)
	}

	start := char
	if start == len(line) || !isWordChar(line[start]) {
		if start == 0 || !isWordChar(line[start-1]) {
			return Identifier{}, false
		}
		start--
	}

	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end := start
	for end < len(line) && isWordChar(line[end]) {
		end++
	}

	text := line[start:end]
	return Identifier{
		Text:       text,
		Normalized: strings.ToUpper(text),
		Start:      start,
		End:        end,
	}, true
}

// leadingWord returns the run of word characters at the start of s.
func leadingWord(s string) string {
	i := 0
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return s[:i]
}

func trimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// hasWordPrefixFold reports whether s starts with word (ignoring case) and the
// next character, if any, is not a word character.
func hasWordPrefixFold(s, word string) bool {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return false
	}
	return len(s) == len(word) || !isWordChar(s[len(word)])
}
