package domain

import (
	"time"

	"github.com/google/uuid"
)

// Poem is a source poem or a generated limerick.
// Lines are kept in reading order.
type Poem struct {
	Title string
	Lines []string

	// Set by the scorer on generated poems only.
	GrammarErrors int
	Sentiment     float64
}

// Corpus is the ordered set of poems of one author.
type Corpus struct {
	Author string
	Poems  []Poem
}

// Len returns the number of poems in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Poems)
}

// Token is a single tagged token produced by a POS tagger.
type Token struct {
	Text  string
	POS   PartOfSpeech
	Lemma string
}

// Neighbor is a word returned by a semantic-similarity lookup.
type Neighbor struct {
	Word       string
	Similarity float64
}

// GrammarIssue is one match reported by a grammar checker.
type GrammarIssue struct {
	RuleID      string
	Message     string
	Offset      int
	Length      int
	Suggestions []string
}

// HistoryRecord is one persisted generation result.
type HistoryRecord struct {
	ID             uuid.UUID `json:"id"`
	Author         string    `json:"author"`
	Title          string    `json:"title"`
	Lines          []string  `json:"lines"`
	GrammarScore   int       `json:"grammar_score"`
	SentimentScore float64   `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}
