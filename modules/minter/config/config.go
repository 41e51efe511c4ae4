package config

import "github.com/gaze-network/rainbow-minter/internal/postgres"

type Config struct {
	StartID    int64 `mapstructure:"start_id"`
	TotalCount int64 `mapstructure:"total_count"`
	Randomize  bool  `mapstructure:"randomize"`

	RecipientAddress string `mapstructure:"recipient_address"`
	ContractAddress  string `mapstructure:"contract_address"`

	// DuplicateMarkers are extra error substrings treated as a duplicate mint.
	DuplicateMarkers []string `mapstructure:"duplicate_markers"`
	// DuplicateReasons are contract revert reasons treated as a duplicate mint.
	DuplicateReasons []string `mapstructure:"duplicate_reasons"`

	Ledger LedgerConfig `mapstructure:"ledger"`
}

type LedgerConfig struct {
	Enabled  bool            `mapstructure:"enabled"`
	Postgres postgres.Config `mapstructure:"postgres"`
}
