package tinysearch

// Engine is the in-memory search engine: an append-only document store, a
// positional inverted index and the document counter. It performs no locking
// and no I/O; an embedding service is responsible for serializing mutations
// (AddDocument, Import) against reads (Search, Stats, Export).
type Engine struct {
	analyzer      Analyzer
	snippets      SnippetGenerator
	documents     map[DocumentID]Document
	invertedIndex InvertedIndex
	documentCount DocumentID
}

func NewEngine() *Engine {
	return &Engine{
		analyzer:      NewStandardAnalyzer(),
		snippets:      NewSnippetGenerator(),
		documents:     make(map[DocumentID]Document),
		invertedIndex: make(InvertedIndex),
	}
}

// AddDocument stores content under the next document id and indexes it.
// An empty title defaults to "Document {id}". Empty content is not an error:
// the document is stored with length zero and no postings.
func (e *Engine) AddDocument(content, title string) DocumentID {
	id := e.documentCount + 1
	doc := NewDocument(id, title, content)
	e.documents[id] = doc
	e.documentCount = id

	tokenStream := e.analyzer.Analyze(content)
	for term, posting := range postingsFromTokens(tokenStream) {
		e.invertedIndex.Set(term, id, posting)
	}
	return id
}

// SearchResult is one ranked hit. Score is rounded to four decimals for
// presentation; ranking happens on the unrounded value.
type SearchResult struct {
	DocumentID DocumentID `json:"document_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Score      float64    `json:"score"`
	Snippet    string     `json:"snippet"`
}

// Search tokenizes the query, gathers every document holding a posting for
// any query term and returns them ranked by TF-IDF (ties broken by ascending
// document id). A query that tokenizes to nothing yields an empty list.
func (e *Engine) Search(query string) []SearchResult {
	queryTerms := e.analyzer.Analyze(query).Terms()
	if len(queryTerms) == 0 {
		return []SearchResult{}
	}

	candidates := e.candidateIDs(queryTerms)
	scored := scoreDocuments(candidates, queryTerms, e.invertedIndex, e.documents, len(e.documents))

	results := make([]SearchResult, len(scored))
	for i, ds := range scored {
		results[i] = SearchResult{
			DocumentID: ds.document.ID,
			Title:      ds.document.Title,
			Content:    ds.document.Content,
			Score:      roundScore(ds.score),
			Snippet:    e.snippets.Generate(ds.document.Content, queryTerms),
		}
	}
	return results
}

// candidateIDs returns the union of document ids holding a posting for any
// of the query terms.
func (e *Engine) candidateIDs(queryTerms []string) []DocumentID {
	seen := make(map[DocumentID]struct{})
	var ids []DocumentID
	for _, term := range queryTerms {
		for id := range e.invertedIndex.Lookup(term) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

type Stats struct {
	TotalDocuments        int     `json:"total_documents"`
	TotalTerms            int     `json:"total_terms"`
	AverageDocumentLength float64 `json:"average_document_length"`
}

func (e *Engine) Stats() Stats {
	s := Stats{
		TotalDocuments: len(e.documents),
		TotalTerms:     len(e.invertedIndex),
	}
	if s.TotalDocuments == 0 {
		return s
	}
	var total int
	for _, doc := range e.documents {
		total += doc.Length
	}
	s.AverageDocumentLength = float64(total) / float64(s.TotalDocuments)
	return s
}
