package tinysearch

import (
	"strings"
	"unicode"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// StandardTokenizer splits text on every rune that is not a letter, a digit
// or an underscore. Underscores are kept so identifier-like words survive
// as single terms.
type StandardTokenizer struct{}

func NewStandardTokenizer() *StandardTokenizer {
	return &StandardTokenizer{}
}

func (t *StandardTokenizer) Tokenize(s string) TokenStream {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
	})
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}
