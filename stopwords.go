package tinysearch

// DefaultStopWords is the fixed stopword set used by the standard analyzer.
// High-frequency English function words; single-character words are already
// removed by the length filter.
var DefaultStopWords = []string{
	"about", "after", "all", "also", "an", "and", "any", "are", "as", "at",
	"be", "been", "but", "by", "can", "could", "did", "do", "does", "for",
	"from", "had", "has", "have", "he", "her", "his", "how", "if", "in",
	"into", "is", "it", "its", "just", "may", "might", "more", "most", "no",
	"nor", "not", "of", "on", "or", "our", "out", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "those", "to", "too", "was", "we", "were",
	"what", "when", "where", "which", "who", "why", "will", "with", "would",
	"you", "your",
}
