package postgres

import (
	"github.com/gaze-network/rainbow-minter/internal/postgres"
	"github.com/gaze-network/rainbow-minter/modules/minter/datagateway"
)

var _ datagateway.MintLedgerDataGateway = (*Repository)(nil)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db: db,
	}
}
