package evmclient

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// OutOfGasMessage is the message of ErrOutOfGas. Remote providers report the same text
// for transactions that exhausted the gas limit.
const OutOfGasMessage = "Transaction ran out of gas. Please provide more gas"

var (
	// ErrOutOfGas is returned when a mined transaction failed after consuming its whole gas limit.
	ErrOutOfGas = errors.New(OutOfGasMessage)

	// ErrGasPriceTooHigh is returned before submission when the suggested gas price exceeds the configured cap.
	ErrGasPriceTooHigh = errors.New("gas price too high")

	// ErrReverted is returned when a mined transaction failed with a revert.
	ErrReverted = errors.New("transaction reverted")
)

// RevertError describes a reverted mint transaction.
// Reason is the decoded revert reason, empty if the node did not report one.
type RevertError struct {
	TxHash string
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transaction %s reverted", e.TxHash)
	}
	return fmt.Sprintf("transaction %s reverted: %s", e.TxHash, e.Reason)
}

func (e *RevertError) Unwrap() error {
	return ErrReverted
}
