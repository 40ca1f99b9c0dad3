// assets/embed.go
//
// Files compiled into the binary:
//   - words.txt: default word list used when no WORDS_FILE is configured.
//   - sql/*.sql: schema migrations for the in-memory round history.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// OpenWords opens the embedded default word list, one word per line.
// Lines starting with '#' are comments; the words package filters them out
// together with anything else that is not a word.
func OpenWords() (fs.File, error) {
	return FS.Open("words.txt")
}

// Migrations returns the embedded migration directory rooted at "sql".
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// "sql" is embedded above; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
