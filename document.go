package tinysearch

import (
	"fmt"
	"strings"
)

type DocumentID uint64

// Document is an immutable record in the store. Length is the raw
// whitespace-delimited word count of Content, not the filtered token count;
// it is the TF denominator.
type Document struct {
	ID      DocumentID `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Length  int        `json:"length"`
}

func NewDocument(id DocumentID, title, content string) Document {
	if title == "" {
		title = fmt.Sprintf("Document %d", id)
	}
	return Document{
		ID:      id,
		Title:   title,
		Content: content,
		Length:  len(strings.Fields(content)),
	}
}
