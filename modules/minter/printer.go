package minter

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Printer writes the human readable progress of a run, one line per outcome.
type Printer struct {
	w      io.Writer
	config RunConfig
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) RunStarted(_ context.Context, config RunConfig, _ time.Time) {
	p.config = config
	mode := "sequential"
	if config.Randomize {
		mode = "random"
	}
	fmt.Fprintf(p.w, "Minting %d RainbowCoin(s) on %s (%s) to %s\n", config.TotalCount, config.Network, mode, config.RecipientAddress)
}

func (p *Printer) OutcomeRecorded(_ context.Context, outcome Outcome) {
	switch outcome.Kind {
	case OutcomeSuccess:
		fmt.Fprintf(p.w, "[SUCCESS] %d #%s Minted -> %s\n", outcome.TokenID, outcome.TokenID.Hex(), outcome.TxHash)
		if url := p.config.Network.ValidationURL(p.config.ContractAddress, outcome.TokenID.Uint64()); url != "" {
			fmt.Fprintf(p.w, "          %s\n", url)
		}
	case OutcomeBenignFailure:
		fmt.Fprintf(p.w, "[WARNING] %d has already been minted.\n", outcome.TokenID)
	case OutcomeFatalFailure:
		fmt.Fprintf(p.w, "[ERROR] %s\n", outcome.Reason)
	}
}

func (p *Printer) RunFinished(_ context.Context, report *Report) {
	switch report.Status {
	case StatusCompleted:
		fmt.Fprintln(p.w, "--- MINTING COMPLETE ---")
	case StatusNothingMinted:
		fmt.Fprintln(p.w, "--- NOTHING MINTED ---")
	default:
		if report.FatalError != nil && !hasFatalOutcome(report) {
			fmt.Fprintf(p.w, "[ERROR] %s\n", report.FatalError)
		}
		fmt.Fprintln(p.w, "--- MINTING FAILED ---")
	}
	fmt.Fprintf(p.w, "Minted %d of %d attempted in %s (fee %s ETH)\n",
		report.Succeeded, report.Attempted, report.Elapsed.Round(time.Millisecond), report.TotalFeeEther().String())
}

func hasFatalOutcome(report *Report) bool {
	for _, o := range report.Outcomes {
		if o.Kind == OutcomeFatalFailure {
			return true
		}
	}
	return false
}
