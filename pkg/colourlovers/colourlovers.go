// Package colourlovers is a client of the ColourLovers colour naming API.
package colourlovers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/pkg/httpclient"
)

const (
	DefaultBaseURL = "https://www.colourlovers.com"
	DefaultTimeout = 5 * time.Second
)

// Colour is a named colour of the ColourLovers catalogue.
type Colour struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Hex      string `json:"hex"`
	Rank     int64  `json:"rank"`
	NumViews int64  `json:"numViews"`
	NumVotes int64  `json:"numVotes"`
	URL      string `json:"url"`
}

type Client struct {
	client *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client, err := httpclient.New(baseURL, httpclient.Config{
		Headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "rainbow-minter",
		},
		Timeout: timeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{client: client}, nil
}

// GetColour returns the catalogue entry of an RRGGBB colour.
// It returns errs.NotFound if the colour has no entry.
func (c *Client) GetColour(ctx context.Context, hex string) (*Colour, error) {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	resp, err := c.client.Get(ctx, "/api/color/"+hex, httpclient.RequestOptions{
		Query: url.Values{"format": {"json"}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to request colour")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("unexpected status code %d from %s", resp.StatusCode(), resp.URL)
	}

	var colours []Colour
	if err := resp.UnmarshalBody(&colours); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(colours) == 0 {
		return nil, errors.Wrapf(errs.NotFound, "colour #%s", hex)
	}
	return &colours[0], nil
}
