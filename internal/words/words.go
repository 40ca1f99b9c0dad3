// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the word list from a file, or fall back to the embedded default list.
//   - Keep only words of the configured length made of letters a–z, lowercased.
//   - Serve as both the draw pool and the guess dictionary (List).
//
// File format:
//   One word per line. Surrounding whitespace is trimmed and the word is
//   lowercased before filtering. Duplicates are dropped, first one wins.
//
// Errors:
//   A missing/unreadable file or a list with no usable words is reported as
//   *ConfigError so the caller can decide whether to retry or exit.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// ErrEmptyPool is wrapped by ConfigError when filtering leaves no words.
var ErrEmptyPool = errors.New("words: no words of the configured length")

// ConfigError reports a word source that cannot be used to start a round.
type ConfigError struct {
	Path string // "" for the embedded list
	Err  error
}

func (e *ConfigError) Error() string {
	src := e.Path
	if src == "" {
		src = "embedded list"
	}
	return fmt.Sprintf("word list %s: %v", src, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// List is an immutable, ordered set of same-length words.
// It is safe for concurrent reads.
type List struct {
	length int
	words  []string
	set    map[string]struct{}
}

// Load reads the word list at path, or the embedded default list when path
// is empty, keeping only alphabetic words of the given length.
func Load(path string, length int) (*List, error) {
	if length <= 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("invalid word length %d", length)}
	}

	var (
		src io.ReadCloser
		err error
	)
	if path == "" {
		src, err = assets.OpenWords()
	} else {
		src, err = os.Open(path)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer src.Close()

	l := newList(length)
	if err := l.read(src); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if l.Len() == 0 {
		return nil, &ConfigError{Path: path, Err: ErrEmptyPool}
	}
	return l, nil
}

// New builds a List from in-memory words, applying the same filtering as Load.
func New(list []string, length int) (*List, error) {
	l := newList(length)
	for _, w := range list {
		l.add(w)
	}
	if l.Len() == 0 {
		return nil, &ConfigError{Err: ErrEmptyPool}
	}
	return l, nil
}

func newList(length int) *List {
	return &List{length: length, set: make(map[string]struct{})}
}

// read adds every line of r.
func (l *List) read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		l.add(sc.Text())
	}
	return sc.Err()
}

// add keeps line, trimmed and lowercased, if it is a new word of the list's
// length. Comment lines never pass the letter check.
func (l *List) add(line string) {
	w := strings.ToLower(strings.TrimSpace(line))
	if len(w) != l.length || !isAlpha(w) {
		return
	}
	if _, dup := l.set[w]; dup {
		return
	}
	l.set[w] = struct{}{}
	l.words = append(l.words, w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the list. w is lowercased first.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in file order.
func (l *List) At(i int) string { return l.words[i] }

// WordLength returns the configured word length.
func (l *List) WordLength() int { return l.length }

// Sample returns up to n words from the start and from the end of the list.
func (l *List) Sample(n int) (first, last []string) {
	if n > len(l.words) {
		n = len(l.words)
	}
	first = append([]string(nil), l.words[:n]...)
	last = append([]string(nil), l.words[len(l.words)-n:]...)
	return first, last
}

// RandomIndex returns a cryptographically random index in [0, n).
// It returns 0 when n <= 1.
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
