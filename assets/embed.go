// assets/embed.go
//
// Bundled lexicon seed and schema, compiled into the binary.
//   - words.txt:  candidate words with their part of speech.
//   - senses.tsv: dictionary senses (lemma, definition, examples) per token.
//   - sql/*.sql:  lexicon schema migrations, applied in lexical order.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed words.txt senses.tsv sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		// Only strip line endings: trailing tabs mark empty TSV columns.
		s := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(s) == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordLines returns the "<word> <pos>" lines of words.txt.
func WordLines() ([]string, error) {
	return readLines("words.txt")
}

// SenseLines returns the tab-separated lines of senses.tsv.
func SenseLines() ([]string, error) {
	return readLines("senses.tsv")
}

// Seed returns the raw bytes of every seed file, used to fingerprint an
// installed lexicon.
func Seed() ([]byte, error) {
	var out []byte
	for _, name := range []string{"words.txt", "senses.tsv"} {
		b, err := FS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Migration is one embedded schema file.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded sql/*.sql files sorted by name.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(FS, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := FS.ReadFile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: n, SQL: string(b)})
	}
	return out, nil
}
