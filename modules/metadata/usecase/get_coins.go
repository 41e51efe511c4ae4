package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/modules/metadata"
	"github.com/gaze-network/rainbow-minter/modules/minter"
	cstream "github.com/planxnx/concurrent-stream"
)

const getCoinsConcurrency = 8

type coinResult struct {
	coin *metadata.Coin
	err  error
}

// GetCoins resolves many coins concurrently. The result keeps the order of ids.
func (u *Usecase) GetCoins(ctx context.Context, ids []minter.TokenID) ([]*metadata.Coin, error) {
	out := make(chan coinResult)
	stream := cstream.NewStream(ctx, getCoinsConcurrency, out)

	go func() {
		defer stream.Close()
		for _, id := range ids {
			id := id
			stream.Go(func() coinResult {
				coin, err := u.GetCoin(ctx, id)
				return coinResult{coin: coin, err: errors.Wrapf(err, "token id %d", id)}
			})
		}
	}()

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	coins := make([]*metadata.Coin, 0, len(ids))
	var errList []error
	for result := range out {
		if result.err != nil {
			errList = append(errList, result.err)
			continue
		}
		coins = append(coins, result.coin)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return coins, nil
}
