package minter

import (
	"math/big"
	"time"

	"github.com/gaze-network/rainbow-minter/pkg/decimals"
	"github.com/shopspring/decimal"
)

type RunStatus string

const (
	StatusInProgress    RunStatus = "in_progress"
	StatusCompleted     RunStatus = "completed"
	StatusNothingMinted RunStatus = "nothing_minted"
	StatusFailed        RunStatus = "failed"
)

// Report is the summary of a run.
type Report struct {
	Attempted int
	Succeeded int
	StartedAt time.Time
	Elapsed   time.Duration
	Status    RunStatus

	Outcomes []Outcome
	TxHashes []string
	// FatalError is the error that halted a failed run.
	FatalError error
	// TotalFee is the wei paid by every mined transaction of the run, failed ones included.
	TotalFee *big.Int
}

// ExitCode is the process exit code of the run.
func (r *Report) ExitCode() int {
	if r == nil || r.Status == StatusFailed {
		return 1
	}
	return 0
}

func (r *Report) TotalFeeEther() decimal.Decimal {
	return decimals.WeiToEther(r.TotalFee)
}

// Accountant keeps the report of a run. It is not safe for concurrent use.
type Accountant struct {
	now      func() time.Time
	report   *Report
	terminal map[TokenID]struct{}
	final    bool
}

func NewAccountant(now func() time.Time) *Accountant {
	if now == nil {
		now = time.Now
	}
	return &Accountant{
		now: now,
		report: &Report{
			Status:   StatusInProgress,
			TotalFee: new(big.Int),
		},
		terminal: make(map[TokenID]struct{}),
	}
}

// Start captures the start time of the run. Only the first call has an effect.
func (a *Accountant) Start() {
	if a.report.StartedAt.IsZero() {
		a.report.StartedAt = a.now()
	}
}

// IsTerminal reports whether id already has a success or benign outcome in this run.
func (a *Accountant) IsTerminal(id TokenID) bool {
	_, ok := a.terminal[id]
	return ok
}

// Record adds an outcome to the report. It returns true when the run must halt.
func (a *Accountant) Record(o Outcome) (halt bool) {
	if a.final {
		return true
	}
	a.report.Outcomes = append(a.report.Outcomes, o)
	if o.Receipt != nil {
		a.report.TotalFee.Add(a.report.TotalFee, o.Receipt.Fee())
	}

	switch o.Kind {
	case OutcomeSuccess:
		a.report.Attempted++
		a.report.Succeeded++
		a.report.TxHashes = append(a.report.TxHashes, o.TxHash)
		a.terminal[o.TokenID] = struct{}{}
	case OutcomeBenignFailure:
		a.report.Attempted++
		a.terminal[o.TokenID] = struct{}{}
	default:
		a.report.Attempted++
		a.Abort(o.Err)
		return true
	}
	return false
}

// Abort finalizes the run as failed without recording an attempt.
func (a *Accountant) Abort(err error) {
	if a.final {
		return
	}
	a.report.FatalError = err
	a.report.Status = StatusFailed
	a.finalize()
}

// Finalize closes the run once the batch is exhausted and returns the report.
// A failed run keeps its status.
func (a *Accountant) Finalize() *Report {
	if !a.final {
		a.report.Status = StatusCompleted
		if a.report.Succeeded == 0 {
			a.report.Status = StatusNothingMinted
		}
		a.finalize()
	}
	return a.report
}

func (a *Accountant) finalize() {
	a.Start()
	a.report.Elapsed = a.now().Sub(a.report.StartedAt)
	a.final = true
}

// Report returns the report as recorded so far.
func (a *Accountant) Report() *Report {
	return a.report
}
