package minter

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/samber/lo"
)

// DuplicateMintMarker is the error text the RainbowCoin contract surfaces when minting an existing token.
// The revert of a duplicate mint exhausts the fixed gas limit, so it reads like an out of gas error.
const DuplicateMintMarker = evmclient.OutOfGasMessage

// DefaultDuplicateReasons are the revert reasons of a duplicate mint.
var DefaultDuplicateReasons = []string{"ERC721: token already minted"}

// Classifier decides whether a failed mint is a harmless duplicate mint or fatal.
type Classifier struct {
	markers []string
	reasons []string
}

// NewClassifier creates a classifier. DuplicateMintMarker is always a marker,
// and DefaultDuplicateReasons are used when reasons is empty.
func NewClassifier(markers []string, reasons []string) *Classifier {
	normalize := func(s []string) []string {
		trimmed := lo.Map(s, func(item string, _ int) string { return strings.TrimSpace(item) })
		return lo.Uniq(lo.Filter(trimmed, func(item string, _ int) bool { return item != "" }))
	}
	markers = normalize(append([]string{DuplicateMintMarker}, markers...))
	reasons = normalize(reasons)
	if len(reasons) == 0 {
		reasons = DefaultDuplicateReasons
	}
	return &Classifier{
		markers: markers,
		reasons: reasons,
	}
}

// Classify turns the error of a failed mint into an outcome.
// Structured errors from the chain client are checked first, the error text last.
func (c *Classifier) Classify(id TokenID, err error) Outcome {
	if err == nil {
		return FatalFailure(id, errors.New("mint failed without an error"))
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return FatalFailure(id, err)
	}

	if errors.Is(err, evmclient.ErrOutOfGas) {
		return BenignFailure(id, ReasonAlreadyMinted, err)
	}

	var revertErr *evmclient.RevertError
	if errors.As(err, &revertErr) && lo.Contains(c.reasons, revertErr.Reason) {
		return BenignFailure(id, ReasonAlreadyMinted, err)
	}

	msg := err.Error()
	if lo.ContainsBy(c.markers, func(marker string) bool { return strings.Contains(msg, marker) }) {
		return BenignFailure(id, ReasonAlreadyMinted, err)
	}
	return FatalFailure(id, err)
}
