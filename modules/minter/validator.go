package minter

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	network "github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/minter/config"
)

// RunConfig is the immutable configuration of one run.
type RunConfig struct {
	StartID          int64
	TotalCount       int64
	Randomize        bool
	RecipientAddress string
	ContractAddress  string
	Network          network.Network
}

func NewRunConfig(conf config.Config, net network.Network) RunConfig {
	return RunConfig{
		StartID:          conf.StartID,
		TotalCount:       conf.TotalCount,
		Randomize:        conf.Randomize,
		RecipientAddress: strings.TrimSpace(conf.RecipientAddress),
		ContractAddress:  strings.TrimSpace(conf.ContractAddress),
		Network:          net,
	}
}

// Validate checks the configuration before anything is generated or submitted.
func (c RunConfig) Validate() error {
	if c.RecipientAddress == "" {
		return errors.Wrap(errs.ConfigurationError, "recipient address is required")
	}
	if !common.IsHexAddress(c.RecipientAddress) {
		return errors.Wrapf(errs.ConfigurationError, "recipient address %q is not a valid address", c.RecipientAddress)
	}
	if c.ContractAddress == "" {
		return errors.Wrap(errs.ConfigurationError, "contract address is required")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return errors.Wrapf(errs.ConfigurationError, "contract address %q is not a valid address", c.ContractAddress)
	}
	if c.Network == "" {
		return errors.Wrap(errs.ConfigurationError, "network is required")
	}
	if !c.Network.IsSupported() {
		return errors.Wrapf(errs.ConfigurationError, "unsupported network %q", c.Network)
	}
	return errors.WithStack(ValidateRange(c.StartID, c.TotalCount, c.Randomize))
}

// ValidateRange checks that the run fits the identifier space.
// The start id is ignored in random mode because draws are bounded by construction.
func ValidateRange(startID, totalCount int64, randomize bool) error {
	if totalCount <= 0 {
		return errors.Wrapf(errs.ConfigurationError, "total count must be positive, got %d", totalCount)
	}
	if randomize {
		return nil
	}
	if startID < 0 {
		return errors.Wrapf(errs.ConfigurationError, "start id must not be negative, got %d", startID)
	}
	if startID > int64(MaxTokenID) || totalCount > int64(MaxTokenID)+1-startID {
		return errors.Wrapf(errs.ConfigurationError, "range [%d, %d) exceeds the identifier space [0, %d]", startID, startID+totalCount, MaxTokenID)
	}
	return nil
}
