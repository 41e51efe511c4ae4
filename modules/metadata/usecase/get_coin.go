package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/metadata"
	"github.com/gaze-network/rainbow-minter/modules/minter"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gaze-network/rainbow-minter/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	lookupSourceColourLovers = "colourlovers"
	lookupSourceImageStore   = "imagestore"
)

// GetCoin returns the metadata document of a coin. The colour name lookup never fails the request.
func (u *Usecase) GetCoin(ctx context.Context, id minter.TokenID) (*metadata.Coin, error) {
	if !id.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "token id %d is out of range", id)
	}

	var (
		name     string
		rank     int64
		imageURL string
	)
	group, groupctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		name, rank = u.lookupName(groupctx, id)
		return nil
	})
	group.Go(func() error {
		url, err := u.coinImageURL(groupctx, id)
		if err != nil {
			return errors.Wrap(err, "can't resolve coin image")
		}
		imageURL = url
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	coin := metadata.NewCoin(id, name, rank, imageURL, u.config.ExternalURL)
	return &coin, nil
}

func (u *Usecase) lookupName(ctx context.Context, id minter.TokenID) (string, int64) {
	if u.namer == nil {
		return "", 0
	}
	colour, err := u.namer.GetColour(ctx, id.Hex())
	metrics.MetadataLookups.WithLabelValues(lookupSourceColourLovers, metrics.ResultLabel(err)).Inc()
	if err != nil {
		logger.WarnContext(ctx, "Colour name lookup failed, use hex code as name",
			slogx.Stringer("tokenId", id),
			slogx.Error(err),
		)
		return "", 0
	}
	return colour.Title, colour.Rank
}

func coinImageName(id minter.TokenID) string {
	return fmt.Sprintf("%d.png", id)
}

func (u *Usecase) coinImageURL(ctx context.Context, id minter.TokenID) (string, error) {
	if u.images == nil {
		return fmt.Sprintf("%s/api/coin/%d/image.png", strings.TrimSuffix(u.config.PublicURL, "/"), id), nil
	}

	name := coinImageName(id)
	exists, err := u.images.Exists(ctx, name)
	metrics.MetadataLookups.WithLabelValues(lookupSourceImageStore, metrics.ResultLabel(err)).Inc()
	if err != nil {
		return "", errors.WithStack(err)
	}
	if exists {
		return u.images.URL(name), nil
	}

	data, err := u.RenderCoinImage(id)
	if err != nil {
		return "", errors.WithStack(err)
	}
	url, err := u.images.Put(ctx, name, data)
	if err != nil {
		return "", errors.WithStack(err)
	}
	logger.DebugContext(ctx, "Uploaded coin image", slogx.Stringer("tokenId", id), slogx.String("url", url))
	return url, nil
}
