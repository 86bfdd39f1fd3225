package tagger

import (
	"bufio"
	"embed"
	"fmt"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

//go:embed lexicon/*.txt
var lexiconFS embed.FS

// lexicon corrects the perceptron where it lacks context: single words and
// irregular verb forms it mistakes for nouns.
type lexicon struct {
	verbs      map[string]bool
	adjectives map[string]bool
}

func loadLexicon() (*lexicon, error) {
	verbs, err := readWordList("lexicon/verbs.txt")
	if err != nil {
		return nil, err
	}
	adjectives, err := readWordList("lexicon/adjectives.txt")
	if err != nil {
		return nil, err
	}
	return &lexicon{verbs: verbs, adjectives: adjectives}, nil
}

func readWordList(name string) (map[string]bool, error) {
	f, err := lexiconFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	words := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return words, nil
}

// refine adjusts the tag of a lowercased word with its lemma.
//
// A word tagged on its own takes its category from the lexicon when listed
// there. Inside a sentence, a noun whose lemma is a listed verb and differs
// from the word (ran, sat, sang) is a verb; plural-looking forms stay nouns.
func (l *lexicon) refine(word, lemma string, pos domain.PartOfSpeech, single bool) domain.PartOfSpeech {
	if single {
		switch {
		case l.adjectives[word]:
			return domain.PosAdj
		case l.verbs[word], l.verbs[lemma]:
			return domain.PosVerb
		}
		return pos
	}

	if pos == domain.PosNoun && lemma != word && !strings.HasSuffix(word, "s") && l.verbs[lemma] {
		return domain.PosVerb
	}
	return pos
}
