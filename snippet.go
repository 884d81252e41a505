package tinysearch

import (
	"regexp"
	"strings"
)

const (
	snippetContextBefore = 10
	snippetWindowSize    = 30
	snippetEllipsis      = "..."
)

var nonWordRunes = regexp.MustCompile(`[^a-z0-9_]+`)

// SnippetGenerator extracts a context window around the first query match
// and highlights query terms inside it.
type SnippetGenerator struct {
	contextBefore int
	windowSize    int
}

func NewSnippetGenerator() SnippetGenerator {
	return SnippetGenerator{
		contextBefore: snippetContextBefore,
		windowSize:    snippetWindowSize,
	}
}

// Generate splits content on single spaces (raw words, punctuation intact),
// finds the first word whose cleaned form equals any query term, and returns
// up to windowSize words starting contextBefore words earlier. Whole-word,
// case-insensitive query-term matches inside the window are wrapped in
// <em> markup. The window ends with an ellipsis when the document continues
// past it. No match means the window starts at the beginning.
func (g SnippetGenerator) Generate(content string, queryTerms []string) string {
	words := strings.Split(content, " ")

	start := 0
	for i, w := range words {
		if matchesAny(cleanWord(w), queryTerms) {
			start = i - g.contextBefore
			if start < 0 {
				start = 0
			}
			break
		}
	}

	end := start + g.windowSize
	if end > len(words) {
		end = len(words)
	}
	snippet := strings.Join(words[start:end], " ")
	snippet = highlightTerms(snippet, queryTerms)

	if start+g.windowSize < len(words) {
		snippet += snippetEllipsis
	}
	return snippet
}

// cleanWord lowercases a raw word and strips everything outside the term
// alphabet, so "Dog," compares equal to the term "dog".
func cleanWord(w string) string {
	return nonWordRunes.ReplaceAllString(strings.ToLower(w), "")
}

func matchesAny(cleaned string, terms []string) bool {
	if cleaned == "" {
		return false
	}
	for _, t := range terms {
		if cleaned == t {
			return true
		}
	}
	return false
}

func highlightTerms(snippet string, terms []string) string {
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t) + `\b`)
		snippet = re.ReplaceAllString(snippet, "<em>$0</em>")
	}
	return snippet
}
