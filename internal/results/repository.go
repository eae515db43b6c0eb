package results

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a result repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "results"),
	}
}

func scanResult(s repository.Scanner) (AnalysisResult, error) {
	var r AnalysisResult
	err := s.Scan(
		&r.ID,
		&r.SubPhaseID,
		&r.Status,
		&r.Result,
		&r.Error,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (r *repo) Current(ctx context.Context, subPhaseID uuid.UUID) (*AnalysisResult, error) {
	q := `
		SELECT id, sub_phase_id, status, result, error, created_at, updated_at
		FROM analysis_results
		WHERE sub_phase_id = $1`

	res, err := repository.QueryOne(ctx, r.db, q, []any{subPhaseID}, scanResult)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &res, nil
}

// Upsert relies on the unique index on sub_phase_id: concurrent writers
// and reruns can never leave two current rows visible for one sub-phase.
func (r *repo) Upsert(ctx context.Context, cmd UpsertCommand) (*AnalysisResult, error) {
	if _, err := ParseStatus(string(cmd.Status)); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO analysis_results(sub_phase_id, status, result, error)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sub_phase_id) DO UPDATE SET
			status = EXCLUDED.status,
			result = EXCLUDED.result,
			error = EXCLUDED.error,
			updated_at = NOW()
		RETURNING id, sub_phase_id, status, result, error, created_at, updated_at`

	args := []any{cmd.SubPhaseID, cmd.Status, cmd.Result, cmd.Error}

	res, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (AnalysisResult, error) {
		return repository.QueryOne(ctx, tx, q, args, scanResult)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("result recorded",
		"sub_phase_id", res.SubPhaseID,
		"status", res.Status,
	)
	return &res, nil
}

func (r *repo) CompletedThrough(ctx context.Context, ordinal int) ([]CompletedResult, error) {
	q := `
		SELECT s.id, s.name, p.ordinal, s.position, ar.result
		FROM analysis_results ar
		JOIN sub_phases s ON s.id = ar.sub_phase_id
		JOIN phases p ON p.id = s.phase_id
		WHERE ar.status = $1 AND p.ordinal <= $2
		ORDER BY p.ordinal, s.position`

	items, err := repository.QueryMany(ctx, r.db, q, []any{StatusCompleted, ordinal},
		func(s repository.Scanner) (CompletedResult, error) {
			var c CompletedResult
			err := s.Scan(&c.SubPhaseID, &c.SubPhaseName, &c.PhaseOrdinal, &c.Position, &c.Result)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("query completed results through ordinal %d: %w", ordinal, err)
	}
	return items, nil
}

func (r *repo) CompletedCount(ctx context.Context, phaseID uuid.UUID) (int, error) {
	q := `
		SELECT COUNT(*)
		FROM analysis_results ar
		JOIN sub_phases s ON s.id = ar.sub_phase_id
		WHERE s.phase_id = $1 AND ar.status = $2`

	var count int
	if err := r.db.QueryRowContext(ctx, q, phaseID, StatusCompleted).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed results: %w", err)
	}
	return count, nil
}

func (r *repo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM analysis_results"); err != nil {
		return fmt.Errorf("delete analysis results: %w", err)
	}

	r.logger.Info("all analysis results deleted")
	return nil
}
