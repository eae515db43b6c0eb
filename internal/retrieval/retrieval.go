// Package retrieval implements ranked passage search over ingested company
// documents. Uploaded text is chunked into passages and indexed with
// Postgres full-text search; the analysis agent queries passages to ground
// its answers in document content.
package retrieval

import (
	"context"

	"github.com/google/uuid"
)

// Passage is a ranked retrieval hit. Score is the descending sort key;
// ties are broken by insertion order, so repeated queries over unchanged
// content return passages in a stable order.
type Passage struct {
	Score    float64        `json:"score"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// System defines the public contract for the retrieval store.
type System interface {
	// QuerySimilar returns up to topK passages ranked by relevance to
	// the query. No matches yields an empty slice, not an error; only
	// transport failure returns ErrUnavailable.
	QuerySimilar(ctx context.Context, query string, topK int) ([]Passage, error)

	// Index chunks the given text and stores the passages for a
	// document, replacing any previously indexed content.
	Index(ctx context.Context, documentID uuid.UUID, text string) (int, error)

	// DeleteForDocument removes all passages indexed for a document.
	DeleteForDocument(ctx context.Context, documentID uuid.UUID) error
}
