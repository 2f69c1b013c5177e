// Package grammar holds the small English helpers shared by combat messages
// and recall text.
package grammar

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.English)

// Capitalize upper-cases the first letter of s and leaves the rest alone.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeRuneInString(s)
	return upper.String(s[:n]) + s[n:]
}

// Article returns "an" before a vowel sound and "a" otherwise.
func Article(word string) string {
	if word == "" {
		return "a"
	}
	switch strings.ToLower(word[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}

// Ordinal returns the English suffix for n: st, nd, rd or th.
func Ordinal(n int) string {
	if (n/10)%10 == 1 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// NumberArticle returns "an" for numbers read with a leading vowel
// (8, 11, 18, 80...) and "a" otherwise.
func NumberArticle(n int) string {
	switch {
	case n == 8 || n == 11 || n == 18:
		return "an"
	case n >= 80 && n <= 89:
		return "an"
	}
	return "a"
}

// Plural picks singular or plural by count.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// JoinList joins items Oxford style: "a", "a or b", "a, b, or c".
func JoinList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
}

// ListSeparator returns the text that precedes item i of n in an Oxford list.
func ListSeparator(i, n int, conj string) string {
	switch {
	case i == 0:
		return ""
	case n == 2:
		return " " + conj + " "
	case i == n-1:
		return ", " + conj + " "
	}
	return ", "
}
