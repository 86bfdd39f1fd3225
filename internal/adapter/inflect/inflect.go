// Package inflect converts English nouns between singular and plural.
package inflect

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Inflector wraps the jinzhu/inflection rule set.
type Inflector struct{}

// New creates an Inflector.
func New() Inflector { return Inflector{} }

// Plural returns the plural form of word.
func (Inflector) Plural(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	return inflection.Plural(word)
}

// Singular returns the singular form of word, or "" when word has no
// distinct singular (it is already singular or uncountable).
func (Inflector) Singular(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	s := inflection.Singular(word)
	if s == word {
		return ""
	}
	return s
}
