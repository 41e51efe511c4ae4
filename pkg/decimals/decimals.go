package decimals

import (
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const (
	DefaultDivPrecision = 36

	// EtherDecimals is the number of decimals between wei and ether.
	EtherDecimals = 18
	// GweiDecimals is the number of decimals between wei and gwei.
	GweiDecimals = 9
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// PowerOfTen returns 10^n.
func PowerOfTen[T constraints.Integer](n T) decimal.Decimal {
	return decimal.New(1, int32(n))
}

// ToDecimal scales an integer amount of the smallest unit down by decimals.
func ToDecimal(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// ToUint256 scales amount up by decimals into an integer amount of the smallest unit.
// The fractional part below the smallest unit is truncated.
func ToUint256(amount decimal.Decimal, decimals int32) (*uint256.Int, error) {
	if amount.IsNegative() {
		return nil, errors.Wrapf(errs.InvalidArgument, "negative amount %s", amount)
	}
	result, overflow := uint256.FromBig(amount.Shift(decimals).BigInt())
	if overflow {
		return nil, errors.Wrapf(errs.OverflowUint256, "amount %s overflows uint256", amount)
	}
	return result, nil
}

// WeiToEther converts an amount of wei into ether.
func WeiToEther(wei *big.Int) decimal.Decimal {
	return ToDecimal(wei, EtherDecimals)
}

// WeiToGwei converts an amount of wei into gwei.
func WeiToGwei(wei *big.Int) decimal.Decimal {
	return ToDecimal(wei, GweiDecimals)
}

// GweiToWei parses a decimal amount of gwei, E.g. "1.5", into wei.
func GweiToWei(gwei string) (*uint256.Int, error) {
	amount, err := decimal.NewFromString(gwei)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid gwei amount %q", gwei)
	}
	return ToUint256(amount, GweiDecimals)
}
