package datagateway

import (
	"context"
	"time"

	"github.com/gaze-network/rainbow-minter/modules/minter/internal/entity"
	"github.com/shopspring/decimal"
)

// MintLedgerDataGateway persists the history of mint runs.
type MintLedgerDataGateway interface {
	MintLedgerReaderDataGateway
	MintLedgerWriterDataGateway
}

type MintLedgerReaderDataGateway interface {
	GetRun(ctx context.Context, id int64) (*entity.MintRun, error)
	GetAttemptsByRunID(ctx context.Context, runID int64) ([]entity.MintAttempt, error)
}

type MintLedgerWriterDataGateway interface {
	CreateRun(ctx context.Context, arg CreateRunParams) (int64, error)
	AddAttempt(ctx context.Context, arg AddAttemptParams) error
	FinalizeRun(ctx context.Context, arg FinalizeRunParams) error
}

type CreateRunParams struct {
	Network         string
	ContractAddress string
	Recipient       string
	StartID         int64
	TotalCount      int64
	Randomize       bool
	StartedAt       time.Time
}

type AddAttemptParams struct {
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

type FinalizeRunParams struct {
	ID         int64
	Status     string
	Attempted  int64
	Succeeded  int64
	TotalFee   decimal.Decimal
	FatalError string
	FinishedAt time.Time
}
