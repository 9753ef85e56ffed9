// Package feature turns raw document text into the normalized token
// sequences the classifier reasons about. Extraction is a pure function of
// the input text; the classifier core performs no further normalization.
package feature

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Default token length window. Tokens are kept only when their length is
// strictly between the two bounds.
const (
	DefaultMinLength = 2
	DefaultMaxLength = 20
)

// Extractor tokenizes text on whitespace, lower-cases it, and keeps tokens
// whose length lies strictly inside the configured window. The zero-value
// bounds are filled in by NewExtractor.
type Extractor struct {
	minLength int
	maxLength int
	sanitize  transform.Transformer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLengthBounds overrides the token length window. Tokens of length
// min or max themselves are dropped.
func WithLengthBounds(min, max int) Option {
	return func(e *Extractor) {
		e.minLength = min
		e.maxLength = max
	}
}

// WithSanitizer runs the transformer over the text before tokenization,
// for example to strip punctuation or fold accents.
func WithSanitizer(t transform.Transformer) Option {
	return func(e *Extractor) {
		e.sanitize = t
	}
}

// NewExtractor creates an Extractor with the default length window.
func NewExtractor(optFns ...Option) *Extractor {
	e := &Extractor{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}
	for _, fn := range optFns {
		fn(e)
	}
	return e
}

// Extract returns the normalized tokens of text, in order, duplicates
// included.
func (e *Extractor) Extract(text string) []string {
	if e.sanitize != nil {
		if sanitized, _, err := transform.String(e.sanitize, text); err == nil {
			text = sanitized
		}
	}

	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if n := len(word); n > e.minLength && n < e.maxLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Extract tokenizes text with the default Extractor.
func Extract(text string) []string {
	return defaultExtractor.Extract(text)
}

var defaultExtractor = NewExtractor()

// StripPunctuation returns a transformer that removes every rune that is
// not a letter, a digit, or whitespace. Use with WithSanitizer.
func StripPunctuation() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	}))
}
