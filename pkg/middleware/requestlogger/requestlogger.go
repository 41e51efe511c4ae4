package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	WithRequestQuery     bool     `mapstructure:"request_query"`
	Disable              bool     `mapstructure:"disable"` // Disable logs of successful requests
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`
	// SkipPaths are never logged unless the request fails, E.g. health checks and `/metrics` scrapes.
	SkipPaths []string `mapstructure:"skip_paths"`
}

// New logs every completed request of the metadata API. Errors of the handler chain are
// rendered by the app error handler first, so the logged status is the one sent to the client.
func New(config Config) fiber.Handler {
	hiddenHeaders := lo.SliceToMap(config.HiddenRequestHeaders, func(header string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(header)), struct{}{}
	})
	skipPaths := lo.SliceToMap(config.SkipPaths, func(path string) (string, struct{}) {
		return path, struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(http.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		if level == slog.LevelInfo {
			if _, skip := skipPaths[c.Path()]; skip || config.Disable {
				return nil
			}
		}

		latency := time.Since(start)
		request := []slog.Attr{
			slog.String("id", requestcontext.GetRequestId(c.UserContext())),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slog.String("user-agent", string(c.Context().UserAgent())),
		}
		if tokenID := c.Params("tokenId"); tokenID != "" {
			request = append(request, slog.String("token_id", tokenID))
		}
		if config.WithRequestQuery {
			request = append(request, slog.String("query", string(c.Request().URI().QueryString())))
		}
		if config.WithRequestHeader {
			var headers []any
			for k, v := range c.GetReqHeaders() {
				if _, hidden := hiddenHeaders[strings.ToLower(k)]; !hidden {
					headers = append(headers, slog.Any(k, v))
				}
			}
			request = append(request, slog.Group("header", headers...))
		}

		attrs := []slog.Attr{
			slog.String("event", "metadata_api_request"),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
			{Key: "request", Value: slog.GroupValue(request...)},
			{Key: "response", Value: slog.GroupValue(
				slog.Int("status", status),
				slog.Int("length", len(c.Response().Body())),
			)},
		}
		if chainErr != nil {
			attrs = append(attrs, slog.Any("error", chainErr))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return nil
	}
}
