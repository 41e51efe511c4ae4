package minter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
)

// TokenID is a RainbowCoin token identifier. It packs an RGB colour into 24 bits.
type TokenID uint32

// MaxTokenID is the largest identifier of the identifier space.
const MaxTokenID TokenID = 1<<24 - 1

// ParseTokenID parses a decimal token id and checks it lies in the identifier space.
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "invalid token id %q", s)
	}
	id := TokenID(v)
	if !id.IsValid() {
		return 0, errors.Wrapf(errs.InvalidArgument, "token id %d is out of range [0, %d]", v, MaxTokenID)
	}
	return id, nil
}

func (id TokenID) IsValid() bool {
	return id <= MaxTokenID
}

func (id TokenID) Uint64() uint64 {
	return uint64(id)
}

// RGB unpacks the colour of the token.
func (id TokenID) RGB() (r, g, b uint8) {
	return uint8(id >> 16), uint8(id >> 8), uint8(id)
}

// Hex returns the colour as upper-case RRGGBB.
func (id TokenID) Hex() string {
	return fmt.Sprintf("%06X", uint32(id&MaxTokenID))
}

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
