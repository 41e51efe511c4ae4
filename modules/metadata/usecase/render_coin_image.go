package usecase

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/metadata"
	"github.com/gaze-network/rainbow-minter/modules/minter"
)

func (u *Usecase) RenderCoinImage(id minter.TokenID) ([]byte, error) {
	if !id.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "token id %d is out of range", id)
	}
	data, err := metadata.EncodeCoinPNG(metadata.NewColour(id))
	return data, errors.WithStack(err)
}
