package minter

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/minter/mocks"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRunConfig(startID, totalCount int64, randomize bool) RunConfig {
	return RunConfig{
		StartID:          startID,
		TotalCount:       totalCount,
		Randomize:        randomize,
		RecipientAddress: testRecipient,
		ContractAddress:  testContract,
		Network:          common.NetworkSepolia,
	}
}

// recordingObserver keeps every notification it receives.
type recordingObserver struct {
	started  int
	outcomes []Outcome
	finished *Report
}

func (o *recordingObserver) RunStarted(context.Context, RunConfig, time.Time) { o.started++ }
func (o *recordingObserver) OutcomeRecorded(_ context.Context, outcome Outcome) {
	o.outcomes = append(o.outcomes, outcome)
}
func (o *recordingObserver) RunFinished(_ context.Context, report *Report) { o.finished = report }

func TestNewRejectsInvalidConfig(t *testing.T) {
	client := mocks.NewChainClient(t)
	config := testRunConfig(0, 3, false)
	config.ContractAddress = ""

	_, err := New(client, config)
	assert.ErrorIs(t, err, errs.ConfigurationError)
	client.AssertNotCalled(t, "MintTo", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunAllSucceed(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)
	for _, id := range []uint64{0, 1, 2} {
		client.EXPECT().MintTo(mock.Anything, testRecipient, id).Return(receipt(fmt.Sprintf("0x%02x", id+10), 21_000), nil).Once()
	}

	observer := &recordingObserver{}
	m, err := New(client, testRunConfig(0, 3, false), WithObservers(observer), WithClock(fakeClock(time.Second)))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, StatusCompleted, report.Status)
	assert.Equal(t, 0, report.ExitCode())
	assert.Equal(t, []string{"0x0a", "0x0b", "0x0c"}, report.TxHashes)
	assert.Positive(t, report.Elapsed)

	assert.Equal(t, 1, observer.started)
	assert.Len(t, observer.outcomes, 3)
	assert.Same(t, report, observer.finished)
	for _, o := range observer.outcomes {
		assert.True(t, o.RemoteCall())
		assert.Equal(t, time.Second, o.Duration)
	}
}

func TestRunDuplicateMintIsSkipped(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)

	var calls []uint64
	record := func(_ context.Context, _ string, tokenID uint64) { calls = append(calls, tokenID) }
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(0)).Run(record).Return(receipt("0x00", 21_000), nil).Once()
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(1)).Run(record).
		Return(nil, errors.New("Transaction ran out of gas. Please provide more gas")).Once()
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(2)).Run(record).Return(receipt("0x02", 21_000), nil).Once()

	m, err := New(client, testRunConfig(0, 3, false))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2}, calls, "calls are issued once each, in order")
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, StatusCompleted, report.Status)
	assert.Equal(t, 0, report.ExitCode())
	assert.Equal(t, OutcomeBenignFailure, report.Outcomes[1].Kind)
}

func TestRunFatalFailureHalts(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(10)).Return(receipt("0x10", 21_000), nil).Once()
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(11)).Return(nil, errors.New("nonce too low")).Once()

	m, err := New(client, testRunConfig(10, 5, false))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	assert.ErrorContains(t, err, "nonce too low")
	client.AssertNumberOfCalls(t, "MintTo", 2)
	assert.Equal(t, StatusFailed, report.Status)
	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.ExitCode())
	assert.Len(t, report.Outcomes, 2)
}

func TestRunStructuredDuplicate(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)
	failed := receipt("0xdead", 1_000_000)
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(5)).Return(failed, errors.WithStack(evmclient.ErrOutOfGas)).Once()
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(6)).
		Return(receipt("0xbeef", 30_000), &evmclient.RevertError{TxHash: "0xbeef", Reason: "ERC721: token already minted"}).Once()

	m, err := New(client, testRunConfig(5, 2, false))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusNothingMinted, report.Status)
	assert.Equal(t, 2, report.Attempted)
	assert.Zero(t, report.Succeeded)
	assert.Equal(t, 0, report.ExitCode())
	assert.Equal(t, "0xdead", report.Outcomes[0].TxHash)
	assert.Equal(t, "0.00103", report.TotalFeeEther().String(), "failed transactions still pay gas")
}

func TestRunSkipsIdsAlreadyTerminalInRun(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)

	// every draw yields the same id
	rng := rand.New(constSource(0xFF8800))
	drawn := uint64(0xFF8800)
	client.EXPECT().MintTo(mock.Anything, testRecipient, drawn).Return(receipt("0x01", 21_000), nil).Once()

	m, err := New(client, testRunConfig(0, 3, true), WithRand(rng))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "MintTo", 1)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, report.Outcomes, 3)
	for _, o := range report.Outcomes[1:] {
		assert.Equal(t, OutcomeBenignFailure, o.Kind)
		assert.Equal(t, ReasonAlreadyMintedInRun, o.Reason)
		assert.False(t, o.RemoteCall())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := mocks.NewChainClient(t)
	client.EXPECT().MintTo(mock.Anything, testRecipient, uint64(0)).
		Run(func(context.Context, string, uint64) { cancel() }).
		Return(receipt("0x00", 21_000), nil).Once()

	m, err := New(client, testRunConfig(0, 3, false))
	require.NoError(t, err)

	report, err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	client.AssertNumberOfCalls(t, "MintTo", 1)
	assert.Equal(t, StatusFailed, report.Status)
	assert.Equal(t, 1, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.ExitCode())
}

func TestRunIsRepeatable(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewChainClient(t)
	client.EXPECT().MintTo(mock.Anything, testRecipient, mock.AnythingOfType("uint64")).Return(receipt("0x01", 21_000), nil).Times(4)

	m, err := New(client, testRunConfig(100, 2, false))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		report, err := m.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, []TokenID{100, 101}, []TokenID{report.Outcomes[0].TokenID, report.Outcomes[1].TokenID})
		assert.Equal(t, 2, report.Succeeded)
	}
}
