// Package natsort orders strings so that embedded numbers compare numerically.
//
// "frame9.png" sorts before "frame10.png" because the digit runs 9 and 10
// are compared as integers, while the surrounding text is compared
// case-insensitively.
package natsort

import (
	"sort"
	"strings"
)

// Token is one run of a sort key: either text or digits.
type Token struct {
	Text   string
	Digits bool
}

// Key is the sort key of a string. Tokens alternate between text and digit
// runs, starting with a (possibly empty) text run.
type Key []Token

// KeyOf splits s into alternating text and digit runs.
// Text runs are lower-cased. Digit runs keep their literal value.
func KeyOf(s string) Key {
	key := Key{}
	start := 0
	inDigits := false

	for i := 0; i < len(s); i++ {
		d := isDigit(s[i])
		if d == inDigits {
			continue
		}
		key = append(key, makeToken(s[start:i], inDigits))
		start = i
		inDigits = d
	}
	key = append(key, makeToken(s[start:], inDigits))

	// Keep the text/digit alternation even when s ends with a digit run.
	if inDigits {
		key = append(key, Token{})
	}
	return key
}

func makeToken(run string, digits bool) Token {
	if digits {
		return Token{Text: run, Digits: true}
	}
	return Token{Text: strings.ToLower(run)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func Compare(a, b Key) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var c int
		if a[i].Digits && b[i].Digits {
			c = compareNumbers(a[i].Text, b[i].Text)
		} else {
			c = strings.Compare(a[i].Text, b[i].Text)
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// compareNumbers compares two decimal digit strings of any length.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Strings sorts names in natural order. The sort is stable: names with
// equal keys keep their relative order.
func Strings(names []string) {
	SliceStable(names, func(i int) string { return names[i] })
}

// SliceStable sorts a slice in natural order of the string returned by
// name for each index. Keys are computed once per element.
func SliceStable[T any](items []T, name func(i int) string) {
	keys := make([]Key, len(items))
	for i := range items {
		keys[i] = KeyOf(name(i))
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return Compare(keys[idx[i]], keys[idx[j]]) < 0
	})

	sorted := make([]T, len(items))
	for i, k := range idx {
		sorted[i] = items[k]
	}
	copy(items, sorted)
}
