package text

import "unicode/utf8"

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// AppendAndCount appends suffix to the string s points to and returns the
// length of the grown value. Every call mutates *s, so repeated calls keep
// growing it.
func AppendAndCount(s *string, suffix string) int {
	*s += suffix
	return Length(*s)
}

// CountChar counts exact, case-sensitive occurrences of c in s.
func CountChar(s string, c rune) int {
	n := 0
	for _, r := range s {
		if r == c {
			n++
		}
	}
	return n
}
