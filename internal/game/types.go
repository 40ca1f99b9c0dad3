// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Mark / Feedback: per-letter result of a guess (correct/present/absent).
//   - Outcome: state of a round (in progress, won, lost).
//   - Mode: feedback scoring or legacy match-only scoring.
//   - Turn: everything the caller needs to show after an accepted guess.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target, but at another position.
//   - "absent":  letter is not in the target (or all its occurrences are used up).
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Glyphs used when rendering marks as plain text.
const (
	GlyphCorrect = "✓"
	GlyphPresent = "≈"
	GlyphAbsent  = "✗"
)

// Glyph returns the one-character symbol for m.
func (m Mark) Glyph() string {
	switch m {
	case MarkCorrect:
		return GlyphCorrect
	case MarkPresent:
		return GlyphPresent
	default:
		return GlyphAbsent
	}
}

// Feedback is the ordered list of marks for one guess, one per letter.
type Feedback []Mark

// String renders the feedback as glyphs, e.g. "✗✗✓≈≈".
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteString(m.Glyph())
	}
	return b.String()
}

// Solved reports whether every mark is MarkCorrect.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// Outcome is the coarse state of a round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether no more guesses are accepted.
func (o Outcome) Terminal() bool { return o != InProgress }

// Mode selects how guesses are scored.
type Mode int

const (
	// ModeFeedback scores every letter (the normal game).
	ModeFeedback Mode = iota
	// ModeMatch only tells whether the guess is the target. Legacy variant
	// without per-letter hints.
	ModeMatch
)

func (m Mode) String() string {
	if m == ModeMatch {
		return "match"
	}
	return "feedback"
}

// Turn describes one accepted guess.
type Turn struct {
	Guess     string
	Feedback  Feedback // nil in ModeMatch
	Attempt   int      // 1-based number of this guess
	Remaining int      // attempts left after this guess
	Outcome   Outcome  // round outcome after this guess
}
