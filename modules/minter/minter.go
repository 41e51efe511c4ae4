package minter

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gaze-network/rainbow-minter/pkg/metrics"
)

// ChainClient mints a token and blocks until the transaction settles.
type ChainClient interface {
	MintTo(ctx context.Context, recipient string, tokenID uint64) (*evmclient.Receipt, error)
}

// Observer is notified of the progress of a run. Calls are made from the run goroutine.
type Observer interface {
	RunStarted(ctx context.Context, config RunConfig, startedAt time.Time)
	OutcomeRecorded(ctx context.Context, outcome Outcome)
	RunFinished(ctx context.Context, report *Report)
}

type Option func(*Minter)

// WithRand sets the entropy source of random mode.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minter) { m.rng = rng }
}

func WithClassifier(classifier *Classifier) Option {
	return func(m *Minter) { m.classifier = classifier }
}

func WithObservers(observers ...Observer) Option {
	return func(m *Minter) { m.observers = append(m.observers, observers...) }
}

func WithClock(now func() time.Time) Option {
	return func(m *Minter) { m.now = now }
}

// Minter submits the mints of a run one at a time.
// Mints from one sender are ordered by nonce, so submissions are never concurrent.
type Minter struct {
	client     ChainClient
	config     RunConfig
	classifier *Classifier
	observers  []Observer
	rng        *rand.Rand
	now        func() time.Time
}

// New validates config and creates a Minter. It never calls the chain.
func New(client ChainClient, config RunConfig, opts ...Option) (*Minter, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	m := &Minter{
		client: client,
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.classifier == nil {
		m.classifier = NewClassifier(nil, nil)
	}
	return m, nil
}

// Run mints every id of the batch. It returns the final report, and the fatal error of a failed run.
func (m *Minter) Run(ctx context.Context) (*Report, error) {
	ctx = logger.WithContext(ctx, slogx.String("module", "minter"))

	generator := NewGenerator(TokenID(m.config.StartID), int(m.config.TotalCount), m.config.Randomize, m.rng)
	accountant := NewAccountant(m.now)
	accountant.Start()
	for _, o := range m.observers {
		o.RunStarted(ctx, m.config, accountant.Report().StartedAt)
	}

	logger.InfoContext(ctx, "Minting started",
		slogx.Stringer("network", m.config.Network),
		slogx.String("contract", m.config.ContractAddress),
		slogx.String("recipient", m.config.RecipientAddress),
		slogx.Int("total_count", generator.Len()),
		slogx.Bool("randomize", m.config.Randomize),
	)

	for {
		id, ok := generator.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			accountant.Abort(errors.Wrapf(err, "run interrupted before minting token %d", id))
			break
		}

		var outcome Outcome
		if accountant.IsTerminal(id) {
			outcome = BenignFailure(id, ReasonAlreadyMintedInRun, nil)
		} else {
			outcome = m.submit(ctx, id)
		}
		halt := accountant.Record(outcome)
		for _, o := range m.observers {
			o.OutcomeRecorded(ctx, outcome)
		}
		if halt {
			break
		}
	}

	report := accountant.Finalize()
	for _, o := range m.observers {
		o.RunFinished(ctx, report)
	}

	attrs := []slog.Attr{
		slogx.String("status", string(report.Status)),
		slogx.Int("attempted", report.Attempted),
		slogx.Int("succeeded", report.Succeeded),
		slogx.Duration("elapsed", report.Elapsed),
		slogx.String("total_fee_eth", report.TotalFeeEther().String()),
	}
	if report.Status == StatusFailed {
		logger.LogAttrs(ctx, slog.LevelError, "Minting failed", append(attrs, slogx.Error(report.FatalError))...)
		return report, errors.WithStack(report.FatalError)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Minting finished", attrs...)
	return report, nil
}

func (m *Minter) submit(ctx context.Context, id TokenID) Outcome {
	start := m.now()
	receipt, err := m.client.MintTo(ctx, m.config.RecipientAddress, id.Uint64())
	elapsed := m.now().Sub(start)
	metrics.MintSubmitDuration.Observe(elapsed.Seconds())

	var outcome Outcome
	if err != nil {
		outcome = m.classifier.Classify(id, err)
		if receipt != nil {
			outcome.Receipt = receipt
			outcome.TxHash = receipt.TxHash
		}
	} else {
		outcome = Success(id, receipt)
	}
	outcome.AttemptedAt = start
	outcome.Duration = elapsed
	metrics.MintOutcomes.WithLabelValues(string(outcome.Kind)).Inc()

	switch outcome.Kind {
	case OutcomeSuccess:
		logger.DebugContext(ctx, "Token minted", slogx.Uint64("token_id", id.Uint64()), slogx.String("tx_hash", outcome.TxHash))
	case OutcomeBenignFailure:
		logger.WarnContext(ctx, "Token already minted, skipped", slogx.Uint64("token_id", id.Uint64()), slogx.Error(err))
	}
	return outcome
}
