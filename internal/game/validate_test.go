package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func testList(t *testing.T) *words.List {
	t.Helper()
	l, err := words.New([]string{"stone", "boost", "notes", "brave", "world", "crane"}, 5)
	require.NoError(t, err)
	return l
}

func TestCheck(t *testing.T) {
	dict := testList(t)

	tests := []struct {
		name      string
		candidate string
		want      error
	}{
		{"valid", "stone", nil},
		{"upper case", "STONE", nil},
		{"mixed case with spaces", "  StOnE \n", nil},
		{"empty", "", ErrWrongLength},
		{"too short", "ston", ErrWrongLength},
		{"too long", "stones", ErrWrongLength},
		{"digit", "st0ne", ErrNotAlphabetic},
		{"punctuation", "ston!", ErrNotAlphabetic},
		{"inner space", "st ne", ErrNotAlphabetic},
		{"accented", "stoné", ErrNotAlphabetic},
		{"unknown word", "abcde", ErrNotInWordList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.candidate, dict, 5)
			if tt.want == nil {
				assert.NoError(t, err)
				assert.True(t, Validate(tt.candidate, dict, 5))
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidGuess)
			assert.False(t, Validate(tt.candidate, dict, 5))
		})
	}
}

func TestCheck_NilDictionary(t *testing.T) {
	assert.ErrorIs(t, Check("stone", nil, 5), ErrNotInWordList)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "stone", Normalize("  STONE\t"))
}
