package components

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyName is returned by Initials for names with no visible characters.
var ErrEmptyName = errors.New("name is empty")

// Initials derives the two-letter avatar label for a display name. With two
// or more words it takes the first letter of each of the first two words;
// otherwise it takes the first two letters of the name.
func Initials(name string) (string, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ErrEmptyName
	}

	if len(fields) >= 2 {
		a, _ := firstRune(fields[0])
		b, _ := firstRune(fields[1])
		return strings.ToUpper(string([]rune{a, b})), nil
	}

	r := []rune(fields[0])
	return strings.ToUpper(string(r[:min(2, len(r))])), nil
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return unicode.ReplacementChar, false
}
