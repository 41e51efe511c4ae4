package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/metadata/config"
	"github.com/gaze-network/rainbow-minter/modules/minter"
	"github.com/gaze-network/rainbow-minter/pkg/colourlovers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNamer struct {
	names map[string]string
}

func (f *fakeNamer) GetColour(ctx context.Context, hex string) (*colourlovers.Colour, error) {
	name, ok := f.names[hex]
	if !ok {
		return nil, errors.Wrap(errs.NotFound, "colour not found")
	}
	return &colourlovers.Colour{Title: name, Hex: hex, Rank: 7}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
	putErr  error
}

func (f *fakeStore) URL(name string) string {
	return "https://cdn/coins/" + name
}

func (f *fakeStore) Exists(ctx context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.objects[name] = data
	f.puts++
	return f.URL(name), nil
}

var testConfig = config.Config{
	ExternalURL:     "https://rainbowco.in",
	PublicURL:       "http://localhost:5000/",
	FactoryImageURL: "https://img/random-coin.png",
}

func TestGetCoin(t *testing.T) {
	ctx := context.Background()
	namer := &fakeNamer{names: map[string]string{"FF0000": "red alert"}}

	t.Run("named with self hosted image", func(t *testing.T) {
		uc := New(testConfig, namer, nil)
		coin, err := uc.GetCoin(ctx, minter.TokenID(0xFF0000))
		require.NoError(t, err)
		assert.Equal(t, "Red Alert", coin.Name)
		assert.Equal(t, int64(7), coin.Attributes.Rank)
		assert.Equal(t, "http://localhost:5000/api/coin/16711680/image.png", coin.Image)
		assert.Equal(t, coin.Image, coin.Attributes.Image)
	})
	t.Run("lookup failure falls back to hex", func(t *testing.T) {
		uc := New(testConfig, namer, nil)
		coin, err := uc.GetCoin(ctx, minter.TokenID(0x00FF00))
		require.NoError(t, err)
		assert.Equal(t, "#00FF00", coin.Name)
		assert.Equal(t, int64(0), coin.Attributes.Rank)
	})
	t.Run("uploads image once", func(t *testing.T) {
		store := &fakeStore{objects: map[string][]byte{}}
		uc := New(testConfig, namer, store)
		for i := 0; i < 2; i++ {
			coin, err := uc.GetCoin(ctx, minter.TokenID(0xFF0000))
			require.NoError(t, err)
			assert.Equal(t, "https://cdn/coins/16711680.png", coin.Image)
		}
		assert.Equal(t, 1, store.puts)
		assert.NotEmpty(t, store.objects["16711680.png"])
	})
	t.Run("upload failure", func(t *testing.T) {
		store := &fakeStore{objects: map[string][]byte{}, putErr: errors.New("denied")}
		uc := New(testConfig, namer, store)
		_, err := uc.GetCoin(ctx, minter.TokenID(1))
		assert.ErrorContains(t, err, "denied")
	})
	t.Run("out of range", func(t *testing.T) {
		uc := New(testConfig, namer, nil)
		_, err := uc.GetCoin(ctx, minter.MaxTokenID+1)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestGetCoins(t *testing.T) {
	ctx := context.Background()
	names := map[string]string{}
	ids := make([]minter.TokenID, 0, 50)
	for i := 0; i < 50; i++ {
		id := minter.TokenID(i * 997)
		ids = append(ids, id)
		names[id.Hex()] = fmt.Sprintf("colour %d", i)
	}
	uc := New(testConfig, &fakeNamer{names: names}, &fakeStore{objects: map[string][]byte{}})

	coins, err := uc.GetCoins(ctx, ids)
	require.NoError(t, err)
	require.Len(t, coins, len(ids))
	for i, coin := range coins {
		assert.Equal(t, ids[i], coin.TokenID)
		assert.Equal(t, fmt.Sprintf("Colour %d", i), coin.Name)
	}

	t.Run("empty", func(t *testing.T) {
		coins, err := uc.GetCoins(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, coins)
	})
	t.Run("invalid id", func(t *testing.T) {
		_, err := uc.GetCoins(ctx, []minter.TokenID{1, minter.MaxTokenID + 1})
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestGetFactory(t *testing.T) {
	uc := New(testConfig, nil, nil)
	factory := uc.GetFactory(2)
	assert.Equal(t, "https://img/random-coin.png", factory.Image)
	assert.Equal(t, "https://rainbowco.in/factory/2", factory.ExternalURL)
}

func TestRenderCoinImage(t *testing.T) {
	uc := New(testConfig, nil, nil)
	data, err := uc.RenderCoinImage(minter.TokenID(0x123456))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])

	_, err = uc.RenderCoinImage(minter.MaxTokenID + 1)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
