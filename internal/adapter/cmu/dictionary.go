// Package cmu loads the CMU Pronouncing Dictionary and answers rhyme
// queries from an in-memory index. The dictionary is read once and is safe
// for concurrent reads afterwards.
package cmu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Pronunciation is one ARPAbet transcription of a word, stress digits kept.
type Pronunciation struct {
	Phonemes     []string
	VariantIndex int // 0 for primary, 1 for (2), 2 for (3), etc.
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
	RhymeGroups  int
}

// Dictionary maps words to pronunciations and rhyming parts to words.
type Dictionary struct {
	pronunciations map[string][]Pronunciation
	rhymes         map[string][]string
	stats          Stats
}

// Open reads a dictionary file.
func Open(path string, logger *slog.Logger) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.With("adapter", "cmu").Info("pronouncing dictionary loaded",
		slog.String("path", path),
		slog.Int("words", d.stats.UniqueWords),
		slog.Int("rhyme_groups", d.stats.RhymeGroups),
	)
	return d, nil
}

// Load parses a dictionary in either the classic "WORD  PH1 PH2" layout or
// the lowercase "word PH1 PH2 # note" layout.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		pronunciations: make(map[string][]Pronunciation),
		rhymes:         make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.stats.TotalLines++
		line := scanner.Text()

		word, pron, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(line, ";;;") {
				d.stats.CommentLines++
			}
			continue
		}

		d.stats.ParsedLines++
		d.pronunciations[word] = append(d.pronunciations[word], pron)

		part := rhymingPart(pron.Phonemes)
		if !slices.Contains(d.rhymes[part], word) {
			d.rhymes[part] = append(d.rhymes[part], word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	d.stats.UniqueWords = len(d.pronunciations)
	d.stats.RhymeGroups = len(d.rhymes)
	return d, nil
}

// Stats returns the parser statistics.
func (d *Dictionary) Stats() Stats { return d.stats }

// Pronunciations returns every transcription of word.
func (d *Dictionary) Pronunciations(word string) []Pronunciation {
	return d.pronunciations[domain.NormalizeWord(word)]
}

// Rhymes returns the words sharing a rhyming part with any pronunciation of
// word, sorted and without word itself. Unknown words have no rhymes.
func (d *Dictionary) Rhymes(_ context.Context, word string) ([]string, error) {
	key := domain.NormalizeWord(word)
	prons := d.pronunciations[key]
	if len(prons) == 0 {
		return nil, nil
	}

	var out []string
	for _, p := range prons {
		for _, w := range d.rhymes[rhymingPart(p.Phonemes)] {
			if w != key {
				out = append(out, w)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// rhymingPart returns the phonemes from the last stressed vowel (stress 1
// or 2) to the end. Without a stressed vowel the whole transcription is used.
func rhymingPart(phonemes []string) string {
	for i := len(phonemes) - 1; i >= 0; i-- {
		p := phonemes[i]
		if strings.HasSuffix(p, "1") || strings.HasSuffix(p, "2") {
			return strings.Join(phonemes[i:], " ")
		}
	}
	return strings.Join(phonemes, " ")
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// parseLine parses a single dictionary line.
// Returns the normalized word and its pronunciation, or errSkipLine.
func parseLine(line string) (string, Pronunciation, error) {
	if strings.HasPrefix(line, ";;;") {
		return "", Pronunciation{}, errSkipLine
	}
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", Pronunciation{}, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(fields[0])
	if word == "" {
		return "", Pronunciation{}, errSkipLine
	}

	phonemes := make([]string, 0, len(fields)-1)
	for _, p := range fields[1:] {
		if stripStress(p) == "" {
			return "", Pronunciation{}, errSkipLine
		}
		phonemes = append(phonemes, strings.ToUpper(p))
	}

	return word, Pronunciation{Phonemes: phonemes, VariantIndex: variantIdx}, nil
}

// parseWordAndVariant splits a raw word like "HOUSE(2)" into the normalized
// word and variant index. "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeWord(raw), 0
	}

	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return domain.NormalizeWord(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil || n < 1 {
		return domain.NormalizeWord(raw), 0
	}
	return domain.NormalizeWord(raw[:idx]), n - 1
}
