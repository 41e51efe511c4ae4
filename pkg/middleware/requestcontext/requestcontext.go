// Package requestcontext copies request scoped values into the user context of a fiber request.
package requestcontext

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				logger.ErrorContext(ctx, "failed to extract request context", err,
					slog.String("event", "requestcontext/error"),
					slog.Int("optionIndex", i),
				)
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

type (
	requestIdKey struct{}
	clientIPKey  struct{}
)

// GetRequestId returns the request id of the context, or an empty string.
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// GetClientIP returns the client IP of the context, or an empty string.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// WithRequestId reuses the X-Request-ID header or generates one, and adds it to the context logger.
func WithRequestId() Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		requestId, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if !ok || requestId == "" {
			requestId = c.Get(requestid.ConfigDefault.Header, fiberutils.UUID())
			c.Set(requestid.ConfigDefault.Header, requestId)
			c.Locals(requestid.ConfigDefault.ContextKey, requestId)
		}
		ctx = context.WithValue(ctx, requestIdKey{}, requestId)
		return logger.WithContext(ctx, "requestId", requestId), nil
	}
}

// WithClientIP takes the client IP from trustedHeader (e.g. CF-Connecting-IP) when it holds a valid IP,
// then from the first X-Forwarded-For entry, then from the remote address.
func WithClientIP(trustedHeader string) Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if trustedHeader != "" {
			if ip := c.Get(trustedHeader); net.ParseIP(ip) != nil {
				return context.WithValue(ctx, clientIPKey{}, ip), nil
			}
		}
		for _, ip := range c.IPs() {
			if net.ParseIP(ip) != nil {
				return context.WithValue(ctx, clientIPKey{}, ip), nil
			}
		}
		return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
	}
}
