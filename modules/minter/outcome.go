package minter

import (
	"time"

	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
)

type OutcomeKind string

const (
	OutcomeSuccess       OutcomeKind = "success"
	OutcomeBenignFailure OutcomeKind = "benign_failure"
	OutcomeFatalFailure  OutcomeKind = "fatal_failure"
)

// Benign failure reasons.
const (
	ReasonAlreadyMinted      = "already minted"
	ReasonAlreadyMintedInRun = "already minted in this run"
)

// Outcome is the terminal result of one mint attempt.
type Outcome struct {
	TokenID TokenID
	Kind    OutcomeKind

	// TxHash is set on success, and on failures that were mined.
	TxHash string
	// Reason explains a benign failure, or holds the message of a fatal one.
	Reason string
	// Err is the raw error of a failure.
	Err error

	// Receipt is nil when nothing was mined.
	Receipt     *evmclient.Receipt
	AttemptedAt time.Time
	Duration    time.Duration
}

func Success(id TokenID, receipt *evmclient.Receipt) Outcome {
	o := Outcome{TokenID: id, Kind: OutcomeSuccess, Receipt: receipt}
	if receipt != nil {
		o.TxHash = receipt.TxHash
	}
	return o
}

func BenignFailure(id TokenID, reason string, err error) Outcome {
	return Outcome{TokenID: id, Kind: OutcomeBenignFailure, Reason: reason, Err: err}
}

func FatalFailure(id TokenID, err error) Outcome {
	o := Outcome{TokenID: id, Kind: OutcomeFatalFailure, Err: err}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// RemoteCall reports whether the outcome came from a chain call.
func (o Outcome) RemoteCall() bool {
	return !o.AttemptedAt.IsZero()
}
