package phases

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/query"
	"github.com/amplitudeventures/vyve/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a phase catalog repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "phases"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) All(ctx context.Context) ([]Phase, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanPhase)
	if err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Phase, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPhase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) SubPhases(ctx context.Context, phaseID uuid.UUID) ([]SubPhase, error) {
	q := `
		SELECT s.id, s.phase_id, s.name, s.prompt, s.takes_summaries, s.position
		FROM public.sub_phases s
		WHERE s.phase_id = $1
		ORDER BY s.position`

	items, err := repository.QueryMany(ctx, r.db, q, []any{phaseID}, scanSubPhase)
	if err != nil {
		return nil, fmt.Errorf("query sub-phases: %w", err)
	}
	return items, nil
}

func (r *repo) SubPhasesThrough(ctx context.Context, ordinal int) ([]SubPhase, error) {
	q := `
		SELECT s.id, s.phase_id, s.name, s.prompt, s.takes_summaries, s.position
		FROM public.sub_phases s
		JOIN public.phases p ON p.id = s.phase_id
		WHERE p.ordinal <= $1
		ORDER BY p.ordinal, s.position`

	items, err := repository.QueryMany(ctx, r.db, q, []any{ordinal}, scanSubPhase)
	if err != nil {
		return nil, fmt.Errorf("query sub-phases through ordinal %d: %w", ordinal, err)
	}
	return items, nil
}

func (r *repo) Dependencies(ctx context.Context, subPhaseID uuid.UUID) ([]uuid.UUID, error) {
	q := `
		SELECT d.depends_on_id
		FROM public.sub_phase_dependencies d
		JOIN public.sub_phases s ON s.id = d.depends_on_id
		WHERE d.sub_phase_id = $1
		ORDER BY s.position`

	ids, err := repository.QueryMany(ctx, r.db, q, []any{subPhaseID},
		func(s repository.Scanner) (uuid.UUID, error) {
			var id uuid.UUID
			err := s.Scan(&id)
			return id, err
		})
	if err != nil {
		return nil, fmt.Errorf("query sub-phase dependencies: %w", err)
	}
	return ids, nil
}

func (r *repo) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE phases SET status = $1 WHERE id = $2",
			status, id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("phase status updated", "id", id, "status", status)
	return nil
}

func (r *repo) ResetStatuses(ctx context.Context) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE phases SET status = $1",
		StatusIdle,
	)
	if err != nil {
		return fmt.Errorf("reset phase statuses: %w", err)
	}

	r.logger.Info("phase statuses reset")
	return nil
}
