package metadata

import (
	"fmt"
	"strings"

	"github.com/gaze-network/rainbow-minter/modules/minter"
)

// CoinAttributes are the attributes of a coin document.
type CoinAttributes struct {
	Name       string  `json:"name"`
	Hex        string  `json:"hex"`
	Red        uint8   `json:"red"`
	Green      uint8   `json:"green"`
	Blue       uint8   `json:"blue"`
	Hue        int     `json:"hue"`
	Saturation int     `json:"saturation"`
	Value      int     `json:"value"`
	Rank       int64   `json:"rank"`
	Luminance  float64 `json:"luminance"`
	Image      string  `json:"image"`
}

// Coin is the ERC-721 metadata document of a minted token.
type Coin struct {
	TokenID     minter.TokenID `json:"-"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	ExternalURL string         `json:"external_url"`
	Attributes  CoinAttributes `json:"attributes"`
}

// Factory is the metadata document of a sale option of the factory contract.
type Factory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ExternalURL string `json:"external_url"`
	Attributes  []any  `json:"attributes"`
}

// NewCoin builds the document of a coin. name falls back to #RRGGBB when empty.
func NewCoin(id minter.TokenID, name string, rank int64, imageURL string, externalURL string) Coin {
	colour := NewColour(id)
	name = strings.TrimSpace(name)
	if name == "" {
		name = "#" + colour.Hex
	} else {
		name = titleCase(name)
	}
	return Coin{
		TokenID:     id,
		Name:        name,
		Description: fmt.Sprintf("A %s colored RainbowCoin.", strings.ToLower(name)),
		Image:       imageURL,
		ExternalURL: fmt.Sprintf("%s/coin/%d", strings.TrimSuffix(externalURL, "/"), id),
		Attributes: CoinAttributes{
			Name:       name,
			Hex:        colour.Hex,
			Red:        colour.Red,
			Green:      colour.Green,
			Blue:       colour.Blue,
			Hue:        colour.Hue,
			Saturation: colour.Saturation,
			Value:      colour.Value,
			Rank:       rank,
			Luminance:  colour.Luminance,
			Image:      imageURL,
		},
	}
}

func NewFactory(optionID uint64, imageURL string, externalURL string) Factory {
	return Factory{
		Name:        "One RainbowCoin",
		Description: "When you purchase this option, you will receive one RainbowCoin!",
		Image:       imageURL,
		ExternalURL: fmt.Sprintf("%s/factory/%d", strings.TrimSuffix(externalURL, "/"), optionID),
		Attributes:  []any{},
	}
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
