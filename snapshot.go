package tinysearch

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned by Import when the snapshot is missing
// required fields or is internally inconsistent. Import never partially
// applies a snapshot: on error the engine state is exactly what it was.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the complete serializable engine state: the document store,
// the inverted index and the document counter. It is the unit of persistence
// collaborators pass across an export/import boundary.
type Snapshot struct {
	Documents     map[DocumentID]Document `json:"documents"`
	Index         InvertedIndex           `json:"index"`
	DocumentCount DocumentID              `json:"document_count"`
}

// Export returns a deep copy of the engine state. Later engine mutations do
// not leak into the snapshot and vice versa.
func (e *Engine) Export() Snapshot {
	return Snapshot{
		Documents:     copyDocuments(e.documents),
		Index:         copyIndex(e.invertedIndex),
		DocumentCount: e.documentCount,
	}
}

// Import validates the snapshot and atomically replaces the document store,
// the inverted index and the counter. A snapshot with absent fields (nil
// maps) or a counter behind the highest stored id is rejected with
// ErrInvalidSnapshot and the engine is left untouched.
func (e *Engine) Import(snapshot Snapshot) error {
	if snapshot.Documents == nil {
		return fmt.Errorf("%w: missing documents", ErrInvalidSnapshot)
	}
	if snapshot.Index == nil {
		return fmt.Errorf("%w: missing index", ErrInvalidSnapshot)
	}
	for id := range snapshot.Documents {
		if id > snapshot.DocumentCount {
			return fmt.Errorf("%w: document %d beyond counter %d", ErrInvalidSnapshot, id, snapshot.DocumentCount)
		}
	}

	e.documents = copyDocuments(snapshot.Documents)
	e.invertedIndex = copyIndex(snapshot.Index)
	e.documentCount = snapshot.DocumentCount
	return nil
}

func copyDocuments(src map[DocumentID]Document) map[DocumentID]Document {
	dst := make(map[DocumentID]Document, len(src))
	for id, doc := range src {
		dst[id] = doc
	}
	return dst
}

func copyIndex(src InvertedIndex) InvertedIndex {
	dst := make(InvertedIndex, len(src))
	for term, pm := range src {
		cp := make(PostingMap, len(pm))
		for id, posting := range pm {
			positions := make([]int, len(posting.Positions))
			copy(positions, posting.Positions)
			cp[id] = Posting{Frequency: posting.Frequency, Positions: positions}
		}
		dst[term] = cp
	}
	return dst
}
