package tinysearch

// Posting records the occurrences of one term in one document. Positions are
// zero-based offsets into the filtered token sequence of the document, in
// strictly increasing order, and len(Positions) always equals Frequency.
type Posting struct {
	Frequency int   `json:"frequency"`
	Positions []int `json:"positions"`
}

// PostingMap holds the postings of a single term keyed by document id.
type PostingMap map[DocumentID]Posting

// InvertedIndex maps a term to its posting map. len(index[term]) is the
// term's document frequency.
type InvertedIndex map[string]PostingMap

// Set stores the posting for (term, docID), replacing any previous value.
// Documents are indexed exactly once, so replace and insert are equivalent.
func (ii InvertedIndex) Set(term string, docID DocumentID, posting Posting) {
	pm, ok := ii[term]
	if !ok {
		pm = PostingMap{}
		ii[term] = pm
	}
	pm[docID] = posting
}

// Lookup returns the posting map for term, or nil when the term is not
// indexed.
func (ii InvertedIndex) Lookup(term string) PostingMap {
	return ii[term]
}

// postingsFromTokens builds one posting per distinct term out of a document's
// filtered token sequence.
func postingsFromTokens(tokenStream TokenStream) map[string]Posting {
	postings := make(map[string]Posting)
	for pos, token := range tokenStream.Tokens {
		p := postings[token.Term]
		p.Frequency++
		p.Positions = append(p.Positions, pos)
		postings[token.Term] = p
	}
	return postings
}
