package minter

import (
	"context"
	"time"

	"github.com/gaze-network/rainbow-minter/modules/minter/datagateway"
	"github.com/gaze-network/rainbow-minter/pkg/decimals"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
)

var _ Observer = (*Ledger)(nil)

// ledgerWriteTimeout bounds each ledger write. Writes outlive the run context,
// so outcomes of an interrupted run are still recorded.
const ledgerWriteTimeout = 5 * time.Second

// Ledger records runs and their outcomes in the database.
// The chain is the source of truth, so a failed write is logged and never stops a run.
type Ledger struct {
	dg    datagateway.MintLedgerWriterDataGateway
	now   func() time.Time
	runID int64
}

func NewLedger(dg datagateway.MintLedgerWriterDataGateway) *Ledger {
	return &Ledger{
		dg:  dg,
		now: time.Now,
	}
}

// RunID returns the id of the current run, 0 if it could not be recorded.
func (l *Ledger) RunID() int64 {
	return l.runID
}

// writeContext detaches ctx from the run's cancellation but keeps its values.
func (l *Ledger) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), ledgerWriteTimeout)
}

func (l *Ledger) RunStarted(ctx context.Context, config RunConfig, startedAt time.Time) {
	wctx, cancel := l.writeContext(ctx)
	defer cancel()
	runID, err := l.dg.CreateRun(wctx, datagateway.CreateRunParams{
		Network:         config.Network.String(),
		ContractAddress: config.ContractAddress,
		Recipient:       config.RecipientAddress,
		StartID:         config.StartID,
		TotalCount:      config.TotalCount,
		Randomize:       config.Randomize,
		StartedAt:       startedAt,
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to record mint run, ledger disabled for this run", slogx.Error(err))
		l.runID = 0
		return
	}
	l.runID = runID
}

func (l *Ledger) OutcomeRecorded(ctx context.Context, outcome Outcome) {
	if l.runID == 0 {
		return
	}
	arg := datagateway.AddAttemptParams{
		RunID:   l.runID,
		TokenID: int64(outcome.TokenID),
		Kind:    string(outcome.Kind),
		TxHash:  outcome.TxHash,
		Reason:  outcome.Reason,
		Fee:     decimals.WeiToEther(outcome.Receipt.Fee()),
	}
	if outcome.Receipt != nil {
		arg.BlockNumber = int64(outcome.Receipt.BlockNumber)
		arg.GasUsed = int64(outcome.Receipt.GasUsed)
	}
	if outcome.RemoteCall() {
		attemptedAt := outcome.AttemptedAt
		arg.AttemptedAt = &attemptedAt
	}
	wctx, cancel := l.writeContext(ctx)
	defer cancel()
	if err := l.dg.AddAttempt(wctx, arg); err != nil {
		logger.WarnContext(ctx, "Failed to record mint attempt",
			slogx.Int64("run_id", l.runID),
			slogx.Uint64("token_id", outcome.TokenID.Uint64()),
			slogx.Error(err),
		)
	}
}

func (l *Ledger) RunFinished(ctx context.Context, report *Report) {
	if l.runID == 0 {
		return
	}
	arg := datagateway.FinalizeRunParams{
		ID:         l.runID,
		Status:     string(report.Status),
		Attempted:  int64(report.Attempted),
		Succeeded:  int64(report.Succeeded),
		TotalFee:   report.TotalFeeEther(),
		FinishedAt: l.now(),
	}
	if report.FatalError != nil {
		arg.FatalError = report.FatalError.Error()
	}
	wctx, cancel := l.writeContext(ctx)
	defer cancel()
	if err := l.dg.FinalizeRun(wctx, arg); err != nil {
		logger.WarnContext(ctx, "Failed to finalize mint run", slogx.Int64("run_id", l.runID), slogx.Error(err))
	}
}
