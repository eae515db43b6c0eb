package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)

	// CreateBatch uploads multiple files concurrently. Per-file failures
	// are reported in the corresponding BatchResult; the batch itself
	// only errors on context cancellation.
	CreateBatch(ctx context.Context, cmds []CreateCommand) ([]BatchResult, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
