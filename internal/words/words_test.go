package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FiltersAndNormalizes(t *testing.T) {
	// Given: a file mixing valid words, wrong lengths, case and junk
	path := writeList(t, "Stone\n  crane  \nhi\nboost\nabc12\nworlds\n\nstone\nNOTES\n")

	// When: loading five-letter words
	l, err := Load(path, 5)
	require.NoError(t, err)

	// Then: only valid, lowercased, deduplicated words remain in file order
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []string{"stone", "crane", "boost", "notes"}, []string{l.At(0), l.At(1), l.At(2), l.At(3)})
	assert.Equal(t, 5, l.WordLength())
}

func TestLoad_SkipsComments(t *testing.T) {
	path := writeList(t, "# five-letter words\n#abcd\nstone\n")

	l, err := Load(path, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Contains("stone"))
	assert.False(t, l.Contains("#abcd"))
}

func TestLoad_OtherLength(t *testing.T) {
	path := writeList(t, "stone\nworlds\nplanet\n")

	l, err := Load(path, 6)
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("planet"))
	assert.False(t, l.Contains("stone"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 5)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoad_EmptyPool(t *testing.T) {
	path := writeList(t, "hi\nthere\n")

	_, err := Load(path, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPool))
}

func TestLoad_InvalidLength(t *testing.T) {
	_, err := Load("", 0)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	l, err := Load("", 5)
	require.NoError(t, err)

	assert.Greater(t, l.Len(), 100)
	assert.True(t, l.Contains("stone"))
	assert.True(t, l.Contains("WORLD"))
}

func TestNew(t *testing.T) {
	l, err := New([]string{"Boost", "stone", "x"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = New([]string{"x"}, 5)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestSample(t *testing.T) {
	l, err := New([]string{"aaaaa", "bbbbb", "ccccc"}, 5)
	require.NoError(t, err)

	first, last := l.Sample(2)
	assert.Equal(t, []string{"aaaaa", "bbbbb"}, first)
	assert.Equal(t, []string{"bbbbb", "ccccc"}, last)

	first, last = l.Sample(10)
	assert.Len(t, first, 3)
	assert.Len(t, last, 3)
}

func TestRandomIndex(t *testing.T) {
	assert.Equal(t, 0, RandomIndex(0))
	assert.Equal(t, 0, RandomIndex(1))
	for i := 0; i < 100; i++ {
		n := RandomIndex(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}
