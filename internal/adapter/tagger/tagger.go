// Package tagger tags English text with universal parts of speech and
// lemmas, using the prose averaged perceptron model and the golem
// lemmatiser. Both models are loaded once and are read-only afterwards.
package tagger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/tag"
	"github.com/jdkato/prose/tokenize"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Tagger implements POS tagging and lemmatisation.
type Tagger struct {
	tokenizer  *tokenize.TreebankWordTokenizer
	tagger     *tag.PerceptronTagger
	lemmatizer *golem.Lemmatizer
	lexicon    *lexicon
	log        *slog.Logger
}

// New loads the tagging and lemmatisation models.
func New(logger *slog.Logger) (*Tagger, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}
	lex, err := loadLexicon()
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	return &Tagger{
		tokenizer:  tokenize.NewTreebankWordTokenizer(),
		tagger:     tag.NewPerceptronTagger(),
		lemmatizer: lemmatizer,
		lexicon:    lex,
		log:        logger.With("adapter", "tagger"),
	}, nil
}

// Tag tokenises text and returns one token per word. A single word is
// classified with the built-in lexicon first, since the perceptron reads
// almost any bare word as a noun.
func (t *Tagger) Tag(ctx context.Context, text string) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := t.tokenizer.Tokenize(text)
	if len(words) == 0 {
		return nil, nil
	}

	single := len(words) == 1
	tagged := t.tagger.Tag(words)
	out := make([]domain.Token, 0, len(tagged))
	for _, tok := range tagged {
		pos := FromPenn(tok.Tag)
		lemma := t.lemma(tok.Text, pos)
		if pos != domain.PosPunct && pos != domain.PosNum {
			pos = t.lexicon.refine(strings.ToLower(tok.Text), lemma, pos, single)
		}
		out = append(out, domain.Token{
			Text:  tok.Text,
			POS:   pos,
			Lemma: lemma,
		})
	}

	t.log.DebugContext(ctx, "tagged", slog.Int("tokens", len(out)))
	return out, nil
}

func (t *Tagger) lemma(word string, pos domain.PartOfSpeech) string {
	lower := strings.ToLower(word)
	if pos == domain.PosPunct || pos == domain.PosNum {
		return lower
	}
	if l := t.lemmatizer.Lemma(lower); l != "" {
		return strings.ToLower(l)
	}
	return lower
}

// FromPenn maps a Penn Treebank tag to a universal part of speech.
func FromPenn(penn string) domain.PartOfSpeech {
	switch penn {
	case "NN", "NNS", "NNP", "NNPS":
		return domain.PosNoun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "MD":
		return domain.PosVerb
	case "JJ", "JJR", "JJS":
		return domain.PosAdj
	case "RB", "RBR", "RBS", "WRB":
		return domain.PosAdv
	case "IN":
		return domain.PosAdp
	case "DT", "PDT", "WDT":
		return domain.PosDet
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return domain.PosPron
	case "CD":
		return domain.PosNum
	case "CC":
		return domain.PosConj
	case ".", ",", ":", "(", ")", "``", "''", "\"", "#", "$", "-LRB-", "-RRB-":
		return domain.PosPunct
	default:
		return domain.PosOther
	}
}
