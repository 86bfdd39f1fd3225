package limerick

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/inspoet/internal/domain"
)

const maxAuthorLength = 200

// GenerateInput holds the parameters of one generation request.
type GenerateInput struct {
	// Author is matched against the corpus directories; empty or unknown
	// picks a random author.
	Author string
	// Candidates overrides generation.candidates when > 0.
	Candidates int
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateAuthor(i.Author)...)

	if i.Candidates < 0 {
		errs = append(errs, domain.FieldError{Field: "candidates", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateAuthor(author string) []domain.FieldError {
	var errs []domain.FieldError
	if utf8.RuneCountInString(author) > maxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 200 characters"})
	}
	if strings.ContainsAny(author, `/\`) || strings.Contains(author, "..") {
		errs = append(errs, domain.FieldError{Field: "author", Message: "must not contain path separators"})
	}
	return errs
}
