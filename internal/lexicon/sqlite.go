// internal/lexicon/sqlite.go
//
// SQLite-backed Source.
//
// Open performs the one-time startup step: it opens the database file,
// applies migrations and checks that the installed data matches the embedded
// seed (blake2b fingerprint stored in lexicon_meta). A missing or stale
// lexicon is (re)installed from the seed; anything that prevents a usable
// lexicon is reported as ErrUnavailable.

package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const checksumKey = "seed_checksum"

// SQLite is a Source reading from a local lexicon database.
type SQLite struct {
	db  *sql.DB
	rnd Rand
}

// Open opens the lexicon at path and ensures it is installed.
func Open(ctx context.Context, path string, r Rand) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnavailable, path, err)
	}
	s := &SQLite{db: db, rnd: r}
	if err := s.Ensure(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Ensure checks availability and integrity of the lexicon, installing the
// embedded seed when it is absent or out of date. Calling it again on an
// intact lexicon changes nothing.
func (s *SQLite) Ensure(ctx context.Context) error {
	if err := migrate(ctx, s.db); err != nil {
		return fmt.Errorf("%w: migrate: %w", ErrUnavailable, err)
	}

	sum, err := seedChecksum()
	if err != nil {
		return fmt.Errorf("%w: seed: %w", ErrUnavailable, err)
	}

	ok, err := s.installed(ctx, sum)
	if err != nil {
		return fmt.Errorf("%w: integrity check: %w", ErrUnavailable, err)
	}
	if ok {
		log.Debug().Str("checksum", sum).Msg("lexicon up to date")
		return nil
	}

	log.Info().Str("checksum", sum).Msg("installing lexicon")
	if err := s.install(ctx, sum); err != nil {
		return fmt.Errorf("%w: install: %w", ErrUnavailable, err)
	}

	ok, err = s.installed(ctx, sum)
	if err != nil {
		return fmt.Errorf("%w: integrity check: %w", ErrUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: lexicon empty after install", ErrUnavailable)
	}
	return nil
}

// installed reports whether the stored fingerprint equals sum and at least
// one word is present.
func (s *SQLite) installed(ctx context.Context, sum string) (bool, error) {
	var stored string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM lexicon_meta WHERE key=?`, checksumKey).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != sum {
		log.Warn().Str("stored", stored).Str("want", sum).Msg("lexicon checksum mismatch")
		return false, nil
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// install replaces the lexicon contents with the embedded seed in one
// transaction.
func (s *SQLite) install(ctx context.Context, sum string) error {
	words, senses, err := parseSeed()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM examples`, `DELETE FROM senses`, `DELETE FROM words`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	for _, w := range words {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO words (word, pos) VALUES (?, ?)`, w.Word, string(w.POS)); err != nil {
			return fmt.Errorf("insert word %q: %w", w.Word, err)
		}
	}

	for _, ss := range senses {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO senses (token, lemma, pos, definition) VALUES (?, ?, ?, ?)`,
			ss.Token, ss.Sense.Word, string(ss.POS), ss.Sense.Definition)
		if err != nil {
			return fmt.Errorf("insert sense for %q: %w", ss.Token, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, ex := range ss.Sense.Examples {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO examples (sense_id, ord, text) VALUES (?, ?, ?)`, id, i, ex); err != nil {
				return fmt.Errorf("insert example for %q: %w", ss.Token, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO lexicon_meta (key, value) VALUES (?, ?)`, checksumKey, sum); err != nil {
		return fmt.Errorf("record checksum: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Int("words", len(words)).Int("senses", len(senses)).Msg("lexicon installed")
	return nil
}

// RandomWord counts the matching rows and reads the one at a random offset.
func (s *SQLite) RandomWord(ctx context.Context, minLen, maxLen int, pos []PartOfSpeech) (string, error) {
	where := `length(word) BETWEEN ? AND ?`
	args := []any{minLen, maxLen}
	if len(pos) > 0 {
		where += ` AND pos IN (?` + strings.Repeat(`,?`, len(pos)-1) + `)`
		for _, p := range pos {
			args = append(args, string(p))
		}
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words WHERE `+where, args...).Scan(&n); err != nil {
		return "", fmt.Errorf("count candidates: %w", err)
	}
	if n == 0 {
		return "", ErrNoCandidates
	}

	var word string
	err := s.db.QueryRowContext(ctx,
		`SELECT word FROM words WHERE `+where+` ORDER BY word, pos LIMIT 1 OFFSET ?`,
		append(args, s.rnd.Intn(n))...,
	).Scan(&word)
	if err != nil {
		return "", fmt.Errorf("read candidate: %w", err)
	}
	return word, nil
}

// Senses returns the senses recorded for token in insertion order.
func (s *SQLite) Senses(ctx context.Context, token string) ([]Sense, error) {
	token = strings.ToLower(token)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lemma, definition FROM senses WHERE token=? ORDER BY id`, token)
	if err != nil {
		return nil, fmt.Errorf("query senses: %w", err)
	}
	defer rows.Close()

	var out []Sense
	index := make(map[int64]int)
	for rows.Next() {
		var id int64
		var sn Sense
		if err := rows.Scan(&id, &sn.Word, &sn.Definition); err != nil {
			return nil, err
		}
		index[id] = len(out)
		out = append(out, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	exRows, err := s.db.QueryContext(ctx, `
        SELECT e.sense_id, e.text
        FROM examples e JOIN senses s ON s.id = e.sense_id
        WHERE s.token=?
        ORDER BY e.sense_id, e.ord`, token)
	if err != nil {
		return nil, fmt.Errorf("query examples: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var id int64
		var text string
		if err := exRows.Scan(&id, &text); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Examples = append(out[i].Examples, text)
		}
	}
	return out, exRows.Err()
}

// Ping verifies the database connection.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
