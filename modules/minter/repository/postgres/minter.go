package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/minter/datagateway"
	"github.com/gaze-network/rainbow-minter/modules/minter/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func (r *Repository) CreateRun(ctx context.Context, arg datagateway.CreateRunParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createRun,
		arg.Network,
		arg.ContractAddress,
		arg.Recipient,
		arg.StartID,
		arg.TotalCount,
		arg.Randomize,
		arg.StartedAt,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return id, nil
}

func (r *Repository) AddAttempt(ctx context.Context, arg datagateway.AddAttemptParams) error {
	_, err := r.db.Exec(ctx, addAttempt,
		arg.RunID,
		arg.TokenID,
		arg.Kind,
		arg.TxHash,
		arg.Reason,
		arg.BlockNumber,
		arg.GasUsed,
		arg.Fee.String(),
		arg.AttemptedAt,
	)
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) FinalizeRun(ctx context.Context, arg datagateway.FinalizeRunParams) error {
	tag, err := r.db.Exec(ctx, finalizeRun,
		arg.ID,
		arg.Status,
		arg.Attempted,
		arg.Succeeded,
		arg.TotalFee.String(),
		arg.FatalError,
		arg.FinishedAt,
	)
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.NotFound, "mint run %d", arg.ID)
	}
	return nil
}

func (r *Repository) GetRun(ctx context.Context, id int64) (*entity.MintRun, error) {
	var (
		run      entity.MintRun
		totalFee string
	)
	err := r.db.QueryRow(ctx, getRun, id).Scan(
		&run.ID,
		&run.Network,
		&run.ContractAddress,
		&run.Recipient,
		&run.StartID,
		&run.TotalCount,
		&run.Randomize,
		&run.Status,
		&run.Attempted,
		&run.Succeeded,
		&totalFee,
		&run.FatalError,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "mint run %d", id)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	if run.TotalFee, err = decimal.NewFromString(totalFee); err != nil {
		return nil, errors.Wrap(err, "failed to parse total fee")
	}
	return &run, nil
}

func (r *Repository) GetAttemptsByRunID(ctx context.Context, runID int64) ([]entity.MintAttempt, error) {
	rows, err := r.db.Query(ctx, getAttemptsByRunID, runID)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	attempts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.MintAttempt, error) {
		var (
			attempt entity.MintAttempt
			fee     string
		)
		if err := row.Scan(
			&attempt.RunID,
			&attempt.TokenID,
			&attempt.Kind,
			&attempt.TxHash,
			&attempt.Reason,
			&attempt.BlockNumber,
			&attempt.GasUsed,
			&fee,
			&attempt.AttemptedAt,
		); err != nil {
			return entity.MintAttempt{}, errors.WithStack(err)
		}
		parsed, parseErr := decimal.NewFromString(fee)
		if parseErr != nil {
			return entity.MintAttempt{}, errors.Wrap(parseErr, "failed to parse fee")
		}
		attempt.Fee = parsed
		return attempt, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect rows")
	}
	return attempts, nil
}
