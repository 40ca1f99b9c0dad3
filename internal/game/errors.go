package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGuess is wrapped by every guess rejection. Rejected guesses
	// do not consume an attempt.
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrWrongLength    = fmt.Errorf("%w: wrong length", ErrInvalidGuess)
	ErrNotAlphabetic  = fmt.Errorf("%w: letters a-z only", ErrInvalidGuess)
	ErrNotInWordList  = fmt.Errorf("%w: not in word list", ErrInvalidGuess)
	ErrRoundOver      = errors.New("round is already finished")
	ErrEmptyPool      = errors.New("word pool is empty")
	ErrInvalidOptions = errors.New("invalid round options")
)
