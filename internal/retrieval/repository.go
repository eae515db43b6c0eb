package retrieval

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/repository"
)

// DefaultTopK bounds QuerySimilar results when the caller passes a
// non-positive count.
const DefaultTopK = 5

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a retrieval repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "retrieval"),
	}
}

func (r *repo) QuerySimilar(ctx context.Context, query string, topK int) ([]Passage, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	// Secondary sort on (document_id, chunk_index) keeps equal-score
	// ordering stable across identical queries.
	q := `
		SELECT ts_rank(p.content_tsv, websearch_to_tsquery('english', $1)) AS score,
		       p.content, p.document_id, p.chunk_index, d.filename
		FROM passages p
		JOIN documents d ON d.id = p.document_id
		WHERE p.content_tsv @@ websearch_to_tsquery('english', $1)
		ORDER BY score DESC, p.document_id, p.chunk_index
		LIMIT $2`

	items, err := repository.QueryMany(ctx, r.db, q, []any{query, topK},
		func(s repository.Scanner) (Passage, error) {
			var (
				p          Passage
				documentID uuid.UUID
				chunkIndex int
				filename   string
			)
			if err := s.Scan(&p.Score, &p.Text, &documentID, &chunkIndex, &filename); err != nil {
				return Passage{}, err
			}
			p.Metadata = map[string]any{
				"document_id": documentID,
				"chunk_index": chunkIndex,
				"filename":    filename,
			}
			return p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("%w: query passages: %w", ErrUnavailable, err)
	}

	return items, nil
}

func (r *repo) Index(ctx context.Context, documentID uuid.UUID, text string) (int, error) {
	chunks := Chunk(text)

	count, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int, error) {
		if _, err := tx.ExecContext(
			ctx,
			"DELETE FROM passages WHERE document_id = $1",
			documentID,
		); err != nil {
			return 0, fmt.Errorf("clear prior passages: %w", err)
		}

		for i, chunk := range chunks {
			if _, err := tx.ExecContext(
				ctx,
				"INSERT INTO passages(document_id, chunk_index, content) VALUES ($1, $2, $3)",
				documentID, i, chunk,
			); err != nil {
				return 0, fmt.Errorf("insert passage %d: %w", i, err)
			}
		}

		return len(chunks), nil
	})

	if err != nil {
		return 0, err
	}

	r.logger.Info("document indexed",
		"document_id", documentID,
		"passages", count,
	)
	return count, nil
}

func (r *repo) DeleteForDocument(ctx context.Context, documentID uuid.UUID) error {
	if _, err := r.db.ExecContext(
		ctx,
		"DELETE FROM passages WHERE document_id = $1",
		documentID,
	); err != nil {
		return fmt.Errorf("delete passages for document %s: %w", documentID, err)
	}

	r.logger.Info("document passages deleted", "document_id", documentID)
	return nil
}
