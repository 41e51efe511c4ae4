package usecase

import (
	"context"

	"github.com/gaze-network/rainbow-minter/modules/metadata/config"
	"github.com/gaze-network/rainbow-minter/pkg/colourlovers"
)

// ColourNamer resolves the catalogue name of an RRGGBB colour.
type ColourNamer interface {
	GetColour(ctx context.Context, hex string) (*colourlovers.Colour, error)
}

// ImageStore hosts rendered coin images.
type ImageStore interface {
	URL(name string) string
	Exists(ctx context.Context, name string) (bool, error)
	Put(ctx context.Context, name string, data []byte) (string, error)
}

type Usecase struct {
	namer  ColourNamer
	images ImageStore
	config config.Config
}

// New creates the metadata usecase. images may be nil, coin images are then served by the API itself.
func New(config config.Config, namer ColourNamer, images ImageStore) *Usecase {
	return &Usecase{
		namer:  namer,
		images: images,
		config: config,
	}
}
