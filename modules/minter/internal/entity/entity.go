package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type MintRun struct {
	ID              int64
	Network         string
	ContractAddress string
	Recipient       string
	StartID         int64
	TotalCount      int64
	Randomize       bool
	Status          string
	Attempted       int64
	Succeeded       int64
	TotalFee        decimal.Decimal
	FatalError      string
	StartedAt       time.Time
	FinishedAt      *time.Time
}

type MintAttempt struct {
	RunID       int64
	TokenID     int64
	Kind        string
	TxHash      string
	Reason      string
	BlockNumber int64
	GasUsed     int64
	Fee         decimal.Decimal
	AttemptedAt *time.Time
}
