package tinysearch

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(strings.ToLower(token.Term))
	}
	return NewTokenStream(r)
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: set,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// LengthFilter drops terms shorter than min characters. The index only holds
// terms of length >= 2, so single characters never become postings.
type LengthFilter struct {
	min int
}

func NewLengthFilter(min int) LengthFilter {
	return LengthFilter{min: min}
}

func (f LengthFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if len(token.Term) >= f.min {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// StemmerFilter reduces terms to their English stem. It is not part of the
// standard analyzer: stemming changes which terms match, so it is opt-in for
// callers that build their own pipeline for both indexing and querying.
type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(english.Stem(token.Term, false))
	}
	return NewTokenStream(r)
}
