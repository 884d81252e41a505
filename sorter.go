package tinysearch

import (
	"math"
	"sort"
)

// tfIdf computes the contribution of one query-term occurrence to a
// document's score. tf uses the raw word count of the document as the
// denominator and is defined as 0 for zero-length documents. idf is
// ln(totalDocs / documentFrequency); the posting map is non-empty whenever
// this is called, so the denominator is at least 1.
func tfIdf(posting Posting, doc Document, documentFrequency, totalDocs int) float64 {
	if doc.Length == 0 {
		return 0
	}
	tf := float64(posting.Frequency) / float64(doc.Length)
	idf := math.Log(float64(totalDocs) / float64(documentFrequency))
	return tf * idf
}

// scoreDocuments scores every candidate document against the tokenized query
// sequence and returns them in rank order. Every occurrence in queryTerms is
// summed separately, so a repeated query term scales the score; this is the
// scoring contract, not an accident of iteration.
func scoreDocuments(ids []DocumentID, queryTerms []string, index InvertedIndex, docs map[DocumentID]Document, totalDocs int) documentScores {
	scored := make(documentScores, len(ids))
	for i, id := range ids {
		doc := docs[id]
		var sum float64
		for _, term := range queryTerms {
			pm := index.Lookup(term)
			posting, ok := pm[id]
			if !ok {
				continue
			}
			sum += tfIdf(posting, doc, len(pm), totalDocs)
		}
		scored[i] = documentScore{document: doc, score: sum}
	}
	sort.Sort(scored)
	return scored
}

// roundScore rounds to four decimals for presentation.
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}

type documentScore struct {
	document Document
	score    float64
}

type documentScores []documentScore

func (ds documentScores) Len() int { return len(ds) }

// Less orders by descending score; equal scores fall back to ascending
// document id so ranking is a deterministic total order.
func (ds documentScores) Less(i, j int) bool {
	if ds[i].score != ds[j].score {
		return ds[i].score > ds[j].score
	}
	return ds[i].document.ID < ds[j].document.ID
}

func (ds documentScores) Swap(i, j int) { ds[i], ds[j] = ds[j], ds[i] }
