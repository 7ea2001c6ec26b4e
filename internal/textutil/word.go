// Package textutil holds Unicode-aware token matching. regexp's \b only knows
// ASCII word characters, which breaks on umlauts.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r can be part of a token.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IndexWord returns the byte offset of the first standalone occurrence of
// word in s, or -1. Standalone means neither neighbour is a letter or digit.
func IndexWord(s, word string) int {
	return index(s, word, true, true)
}

// IndexWordFold is IndexWord ignoring case. The offset refers to the
// lower-cased text and is only meant for ordering.
func IndexWordFold(s, word string) int {
	return IndexWord(strings.ToLower(s), strings.ToLower(word))
}

// HasWordPrefixFold reports whether some word of s starts with prefix,
// ignoring case: "unfall" is found in "Unfallbericht", not in "Arbeitsunfall".
func HasWordPrefixFold(s, prefix string) bool {
	return index(strings.ToLower(s), strings.ToLower(prefix), true, false) >= 0
}

// HasWordSuffixFold reports whether some word of s ends with suffix, ignoring
// case. German compounds put the head noun last, so "gericht" is found in
// "Finanzgericht" while "court" is not found in "courtesy".
func HasWordSuffixFold(s, suffix string) bool {
	return index(strings.ToLower(s), strings.ToLower(suffix), false, true) >= 0
}

// index finds word in s whose left and/or right neighbour is not a word rune.
func index(s, word string, left, right bool) int {
	if word == "" {
		return -1
	}
	from := 0
	for from <= len(s) {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(word)
		if (!left || boundedLeft(s, start)) && (!right || boundedRight(s, end)) {
			return start
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return -1
}

// Bounded reports whether s[start:end] is not glued to a neighbouring letter or digit.
func Bounded(s string, start, end int) bool {
	return boundedLeft(s, start) && boundedRight(s, end)
}

func boundedLeft(s string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return !IsWordRune(r)
}

func boundedRight(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !IsWordRune(r)
}

// Compact removes every whitespace rune, NBSP included.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, s)
}

// FirstLine returns s up to the first line break, trimmed.
func FirstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n\f"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// RuneWindow returns s[from:] cut to at most n runes.
func RuneWindow(s string, from, n int) string {
	rest := s[from:]
	count := 0
	for i := range rest {
		if count == n {
			return rest[:i]
		}
		count++
	}
	return rest
}
