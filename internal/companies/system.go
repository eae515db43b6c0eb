package companies

import (
	"context"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/pagination"
)

// System defines the public contract for company domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Company], error)

	Find(ctx context.Context, id uuid.UUID) (*Company, error)
	Create(ctx context.Context, cmd CreateCommand) (*Company, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
