package minter

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/modules/minter/datagateway"
	"github.com/gaze-network/rainbow-minter/modules/minter/datagateway/mocks"
	chainmocks "github.com/gaze-network/rainbow-minter/modules/minter/mocks"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecordsRun(t *testing.T) {
	ctx := context.Background()
	client := chainmocks.NewChainClient(t)
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(7)).Return(receipt("0x07", 21_000), nil).Once()
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(8)).Return(nil, errors.New(DuplicateMintMarker)).Once()

	mockDg := mocks.NewMintLedgerDataGateway(t)
	mockDg.EXPECT().CreateRun(mock.Anything, mock.MatchedBy(func(arg datagateway.CreateRunParams) bool {
		return arg.Network == "sepolia" && arg.StartID == 7 && arg.TotalCount == 2 && arg.Recipient == testRecipient && !arg.StartedAt.IsZero()
	})).Return(int64(99), nil).Once()
	mockDg.EXPECT().AddAttempt(mock.Anything, mock.MatchedBy(func(arg datagateway.AddAttemptParams) bool {
		return arg.RunID == 99 && arg.TokenID == 7 && arg.Kind == string(OutcomeSuccess) &&
			arg.TxHash == "0x07" && arg.GasUsed == 21_000 && arg.Fee.String() == "0.000021" && arg.AttemptedAt != nil
	})).Return(nil).Once()
	mockDg.EXPECT().AddAttempt(mock.Anything, mock.MatchedBy(func(arg datagateway.AddAttemptParams) bool {
		return arg.RunID == 99 && arg.TokenID == 8 && arg.Kind == string(OutcomeBenignFailure) && arg.Reason == ReasonAlreadyMinted
	})).Return(errors.New("connection reset")).Once()
	mockDg.EXPECT().FinalizeRun(mock.Anything, mock.MatchedBy(func(arg datagateway.FinalizeRunParams) bool {
		return arg.ID == 99 && arg.Status == string(StatusCompleted) && arg.Attempted == 2 && arg.Succeeded == 1 && arg.FatalError == ""
	})).Return(nil).Once()

	ledger := NewLedger(mockDg)
	m, err := New(client, testRunConfig(7, 2, false), WithObservers(ledger))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.NoError(t, err, "ledger failures never fail the run")
	assert.Equal(t, StatusCompleted, report.Status)
	assert.EqualValues(t, 99, ledger.RunID())
}

func TestLedgerDisabledWhenRunNotCreated(t *testing.T) {
	ctx := context.Background()
	mockDg := mocks.NewMintLedgerDataGateway(t)
	mockDg.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(int64(0), errors.New("relation \"mint_runs\" does not exist")).Once()

	ledger := NewLedger(mockDg)
	ledger.RunStarted(ctx, testRunConfig(0, 1, false), time.Now())
	ledger.OutcomeRecorded(ctx, Success(0, receipt("0x00", 21_000)))
	ledger.RunFinished(ctx, &Report{Status: StatusCompleted})

	assert.Zero(t, ledger.RunID())
	mockDg.AssertNotCalled(t, "AddAttempt", mock.Anything, mock.Anything)
	mockDg.AssertNotCalled(t, "FinalizeRun", mock.Anything, mock.Anything)
}

func TestLedgerFinalizesFailedRun(t *testing.T) {
	ctx := context.Background()
	mockDg := mocks.NewMintLedgerDataGateway(t)
	mockDg.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	mockDg.EXPECT().FinalizeRun(mock.Anything, mock.MatchedBy(func(arg datagateway.FinalizeRunParams) bool {
		return arg.Status == string(StatusFailed) && arg.FatalError == "replacement transaction underpriced"
	})).Return(nil).Once()

	ledger := NewLedger(mockDg)
	ledger.RunStarted(ctx, testRunConfig(0, 1, false), time.Now())
	ledger.RunFinished(ctx, &Report{Status: StatusFailed, FatalError: errors.New("replacement transaction underpriced")})
}

func TestLedgerRecordsInterruptedRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := chainmocks.NewChainClient(t)
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(0)).
		RunAndReturn(func(context.Context, string, uint64) (*evmclient.Receipt, error) {
			cancel()
			return receipt("0x00", 21_000), nil
		}).Once()

	// the database driver rejects writes on a done context
	var finalized []datagateway.FinalizeRunParams
	var attempts []datagateway.AddAttemptParams
	mockDg := mocks.NewMintLedgerDataGateway(t)
	mockDg.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(int64(5), nil).Once()
	mockDg.EXPECT().AddAttempt(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, arg datagateway.AddAttemptParams) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			attempts = append(attempts, arg)
			return nil
		}).Once()
	mockDg.EXPECT().FinalizeRun(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, arg datagateway.FinalizeRunParams) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			finalized = append(finalized, arg)
			return nil
		}).Once()

	ledger := NewLedger(mockDg)
	m, err := New(client, testRunConfig(0, 2, false), WithObservers(ledger))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusFailed, report.Status)
	assert.Equal(t, 1, report.Succeeded)

	require.Len(t, attempts, 1)
	assert.EqualValues(t, 0, attempts[0].TokenID)
	assert.Equal(t, string(OutcomeSuccess), attempts[0].Kind)
	require.Len(t, finalized, 1)
	assert.EqualValues(t, 5, finalized[0].ID)
	assert.Equal(t, string(StatusFailed), finalized[0].Status)
	assert.EqualValues(t, 1, finalized[0].Succeeded)
	assert.Contains(t, finalized[0].FatalError, "interrupted")
}
