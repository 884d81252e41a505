package tinysearch

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewStandardAnalyzer is the pipeline used for both indexing and queries:
// split on non-word runes, lowercase, drop stopwords, drop terms shorter
// than two characters. It is a pure function of its input, so index-time and
// query-time terms always agree.
func NewStandardAnalyzer() Analyzer {
	return NewAnalyzer(
		nil,
		NewStandardTokenizer(),
		[]TokenFilter{
			NewLowercaseFilter(),
			NewStopWordFilter(DefaultStopWords),
			NewLengthFilter(2),
		},
	)
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}
