// Package httpclient is a small JSON client over fasthttp, bound to a base URL.
package httpclient

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/valyala/fasthttp"
)

const DefaultUserAgent = "rainbow-minter"

type Config struct {
	// Enable debug logs of every request
	Debug bool

	// Default headers
	Headers map[string]string

	// Timeout of a single request, 0 means only the context deadline applies.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	client  *fasthttp.Client
	config  Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Wrapf(errs.InvalidArgument, "base url %q must be http or https", baseURL)
	}

	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	return &Client{
		baseURL: parsed,
		client:  &fasthttp.Client{Name: DefaultUserAgent},
		config:  cf,
	}, nil
}

type RequestOptions struct {
	Query  url.Values
	Header map[string]string
	Body   []byte // sent as application/json
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// UnmarshalBody decodes a JSON body into out.
func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %s", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	if !strings.HasPrefix(contentType, "application/json") {
		return errors.Errorf("unsupported content type %q from %s: %q", contentType, r.URL, truncate(body, 256))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, truncate(body, 256))
	}
	return nil
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n]) + "..."
	}
	return string(body)
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

// Do sends a request to path, relative to the base URL. The request is bound by the
// context deadline and the configured timeout, whichever comes first.
func (h *Client) Do(ctx context.Context, method, reqPath string, opts RequestOptions) (*HttpResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	u := h.BaseURL()
	u.Path = path.Join(u.Path, reqPath)
	u.RawQuery = opts.Query.Encode()
	target := u.String()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	for k, v := range h.config.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}
	if opts.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(opts.Body)
	}

	start := time.Now()
	var err error
	if deadline, ok := h.deadline(ctx, start); ok {
		err = h.client.DoDeadline(req, resp, deadline)
	} else {
		err = h.client.Do(req, resp)
	}
	if h.config.Debug {
		logger.DebugContext(ctx, "Finished make request",
			slogx.String("package", "httpclient"),
			slogx.String("method", method),
			slogx.String("url", target),
			slogx.Duration("latency", time.Since(start)),
			slogx.Int("status_code", resp.StatusCode()),
			slogx.Int("resp_content_length", len(resp.Body())),
		)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, errors.Wrapf(errs.Timeout, "%s %s", method, target)
		}
		return nil, errors.Wrapf(err, "%s %s", method, target)
	}

	out := &HttpResponse{URL: target}
	resp.CopyTo(&out.Response)
	return out, nil
}

func (h *Client) deadline(ctx context.Context, now time.Time) (time.Time, bool) {
	deadline, ok := ctx.Deadline()
	if h.config.Timeout > 0 {
		if timeout := now.Add(h.config.Timeout); !ok || timeout.Before(deadline) {
			return timeout, true
		}
	}
	return deadline, ok
}

func (h *Client) Get(ctx context.Context, reqPath string, opts RequestOptions) (*HttpResponse, error) {
	return h.Do(ctx, fasthttp.MethodGet, reqPath, opts)
}
