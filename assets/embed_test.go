package assets

import (
	"bufio"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWords(t *testing.T) {
	f, err := OpenWords()
	require.NoError(t, err)
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	require.NoError(t, sc.Err())
	require.NotEmpty(t, list)

	for _, w := range list {
		assert.Len(t, w, 5, "word %q", w)
	}
	assert.Contains(t, list, "stone")
}

func TestMigrations(t *testing.T) {
	names, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "001_rounds.sql")
}
