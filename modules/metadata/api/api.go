package api

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/internal/config"
	"github.com/gaze-network/rainbow-minter/modules/metadata/api/httphandler"
	"github.com/gaze-network/rainbow-minter/modules/metadata/imagestore"
	"github.com/gaze-network/rainbow-minter/modules/metadata/usecase"
	"github.com/gaze-network/rainbow-minter/pkg/colourlovers"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}

// NewUsecase builds the metadata usecase from the injected configuration.
func NewUsecase(injector do.Injector) (*usecase.Usecase, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector).Metadata

	namer, err := colourlovers.New(conf.ColourLoversURL, conf.LookupTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "can't create colourlovers client")
	}

	var images usecase.ImageStore
	if conf.ImageBucket != "" {
		store, err := imagestore.New(ctx, conf.ImageBucket, conf.ImageRegion, conf.ImageObjectPrefix, conf.ImagePublicURL)
		if err != nil {
			return nil, errors.Wrap(err, "can't create image store")
		}
		images = store
		logger.InfoContext(ctx, "Coin images are uploaded to S3", slogx.String("bucket", conf.ImageBucket))
	}

	return usecase.New(conf, namer, images), nil
}

// Mount registers the metadata routes on the injected fiber app.
func Mount(injector do.Injector) error {
	uc, err := NewUsecase(injector)
	if err != nil {
		return errors.WithStack(err)
	}
	app := do.MustInvoke[*fiber.App](injector)
	if err := NewHTTPHandler(uc).Mount(app); err != nil {
		return errors.Wrap(err, "can't mount metadata API")
	}
	return nil
}
