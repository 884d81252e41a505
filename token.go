package tinysearch

type Token struct {
	Term string
}

func NewToken(term string) Token {
	return Token{Term: term}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}
