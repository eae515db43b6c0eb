package documents

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/amplitudeventures/vyve/internal/retrieval"
	"github.com/amplitudeventures/vyve/pkg/pagination"
	"github.com/amplitudeventures/vyve/pkg/query"
	"github.com/amplitudeventures/vyve/pkg/repository"
	"github.com/amplitudeventures/vyve/pkg/storage"
)

// batchWorkers bounds concurrent uploads within a batch.
const batchWorkers = 4

type repo struct {
	db         *sql.DB
	storage    storage.System
	retrieval  retrieval.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository implementing the System interface.
// The retrieval system may be nil; uploads then skip passage indexing.
func New(
	db *sql.DB,
	store storage.System,
	ret retrieval.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		retrieval:  ret,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "ContentType")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	id := uuid.New()
	key := buildStorageKey(cmd.CompanyID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload document blob: %w", err)
	}

	q := `
		INSERT INTO documents(id, company_id, filename, content_type, size_bytes, page_count, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, filename, content_type, size_bytes, page_count, storage_key, status, uploaded_at, updated_at`

	insertArgs := []any{
		id,
		cmd.CompanyID,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
	}

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanDocument)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.index(ctx, &d, cmd.Data)

	r.logger.Info("document created", "id", d.ID, "company_id", d.CompanyID, "filename", d.Filename)
	return &d, nil
}

func (r *repo) CreateBatch(ctx context.Context, cmds []CreateCommand) ([]BatchResult, error) {
	batch := make([]BatchResult, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, cmd := range cmds {
		g.Go(func() error {
			doc, err := r.Create(gctx, cmd)
			if err != nil {
				batch[i] = BatchResult{Filename: cmd.Filename, Error: err.Error()}
				return nil
			}
			batch[i] = BatchResult{Filename: cmd.Filename, Document: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM documents WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if r.retrieval != nil {
		if delErr := r.retrieval.DeleteForDocument(ctx, id); delErr != nil {
			r.logger.Warn("passage delete failed after DB delete", "id", id, "error", delErr)
		}
	}

	if delErr := r.storage.Delete(ctx, doc.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", doc.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("document deleted", "id", id)
	return nil
}

// index chunks text content into the passage store and promotes the
// document to indexed. Non-text content and indexing failures leave the
// document in uploaded status; analysis then runs without its passages.
func (r *repo) index(ctx context.Context, d *Document, data []byte) {
	if r.retrieval == nil || !indexable(d.ContentType) {
		return
	}

	chunks, err := r.retrieval.Index(ctx, d.ID, string(data))
	if err != nil {
		r.logger.Warn("passage indexing failed", "id", d.ID, "error", err)
		return
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2",
		StatusIndexed, d.ID,
	); err != nil {
		r.logger.Warn("failed to mark document indexed", "id", d.ID, "error", err)
		return
	}

	d.Status = StatusIndexed
	r.logger.Info("document indexed", "id", d.ID, "chunks", chunks)
}

func indexable(contentType string) bool {
	mime, _, _ := strings.Cut(contentType, ";")
	switch strings.TrimSpace(mime) {
	case "text/plain", "text/markdown", "text/csv", "text/html", "application/json":
		return true
	}
	return strings.HasPrefix(mime, "text/")
}

func buildStorageKey(companyID, id uuid.UUID, filename string) string {
	return fmt.Sprintf("companies/%s/documents/%s/%s", companyID, id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "document"
	}
	return url.PathEscape(name)
}
