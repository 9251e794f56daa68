package lexicon

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/hangman/assets"
)

type seedWord struct {
	Word string
	POS  PartOfSpeech
}

type seedSense struct {
	Token string
	POS   PartOfSpeech
	Sense Sense
}

// parseSeed reads the embedded words.txt and senses.tsv.
func parseSeed() ([]seedWord, []seedSense, error) {
	wl, err := assets.WordLines()
	if err != nil {
		return nil, nil, fmt.Errorf("read words: %w", err)
	}
	var words []seedWord
	for i, line := range wl {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, nil, fmt.Errorf("words.txt entry %d: want 2 fields, got %d", i+1, len(f))
		}
		pos, err := ParsePartOfSpeech(f[1])
		if err != nil {
			return nil, nil, fmt.Errorf("words.txt entry %d: %w", i+1, err)
		}
		words = append(words, seedWord{Word: strings.ToLower(f[0]), POS: pos})
	}

	sl, err := assets.SenseLines()
	if err != nil {
		return nil, nil, fmt.Errorf("read senses: %w", err)
	}
	var senses []seedSense
	for i, line := range sl {
		f := strings.Split(line, "\t")
		if len(f) != 5 {
			return nil, nil, fmt.Errorf("senses.tsv entry %d: want 5 columns, got %d", i+1, len(f))
		}
		pos, err := ParsePartOfSpeech(f[2])
		if err != nil {
			return nil, nil, fmt.Errorf("senses.tsv entry %d: %w", i+1, err)
		}
		var examples []string
		for _, ex := range strings.Split(f[4], "|") {
			if ex = strings.TrimSpace(ex); ex != "" {
				examples = append(examples, ex)
			}
		}
		senses = append(senses, seedSense{
			Token: strings.ToLower(f[0]),
			POS:   pos,
			Sense: Sense{Word: f[1], Definition: f[3], Examples: examples},
		})
	}
	return words, senses, nil
}

// seedChecksum fingerprints the embedded seed with blake2b-256.
func seedChecksum() (string, error) {
	b, err := assets.Seed()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
