package game

import "strings"

// Dictionary answers word membership. *words.List implements it.
type Dictionary interface {
	Contains(w string) bool
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Check validates a raw guess and returns nil or the reason it was rejected.
// The candidate is normalized first, so "STONE" and " stone" are accepted
// when "stone" is in dict.
func Check(candidate string, dict Dictionary, length int) error {
	w := Normalize(candidate)
	if !isAlpha(w) {
		return ErrNotAlphabetic
	}
	if len(w) != length {
		return ErrWrongLength
	}
	if dict == nil || !dict.Contains(w) {
		return ErrNotInWordList
	}
	return nil
}

// Validate reports whether candidate is a well-formed guess in dict.
// Malformed input of any kind yields false.
func Validate(candidate string, dict Dictionary, length int) bool {
	return Check(candidate, dict, length) == nil
}

// isAlpha checks that a string consists only of a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
