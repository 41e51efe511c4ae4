package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/internal/config"
	metadataapi "github.com/gaze-network/rainbow-minter/modules/metadata/api"
	"github.com/gaze-network/rainbow-minter/pkg/automaxprocs"
	"github.com/gaze-network/rainbow-minter/pkg/errorhandler"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gaze-network/rainbow-minter/pkg/metrics"
	"github.com/gaze-network/rainbow-minter/pkg/middleware/requestcontext"
	"github.com/gaze-network/rainbow-minter/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the RainbowCoin token metadata API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.ErrorContext(cmd.Context(), "Failed to set GOMAXPROCS", err)
			}
			return serveHandler(cmd, args)
		},
	}

	// Add local flags
	flags := serveCmd.Flags()
	flags.Int("port", 5000, "Port to serve the metadata API on")
	flags.String("public-url", "", "Public base URL of the API, used in coin image links")

	// Bind flags to configuration
	config.BindPFlag("http_server.port", flags.Lookup("port"))
	config.BindPFlag("metadata.public_url", flags.Lookup("public-url"))

	return serveCmd
}

const (
	shutdownTimeout = 30 * time.Second
)

func newHTTPServer(conf config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "RainbowCoin Metadata",
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithClientIP(conf.HTTPServer.TrustedIPHeader),
		)).
		Use(requestlogger.New(conf.HTTPServer.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 1024) // bufLen = 1024
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	return app
}

func serveHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Validate inputs and configurations
	{
		if !conf.Network.IsSupported() {
			return errors.Wrapf(errs.ConfigurationError, "%q network is not supported", conf.Network.String())
		}
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		return newHTTPServer(do.MustInvoke[config.Config](i)), nil
	})

	// Mount metadata API
	if err := metadataapi.Mount(injector); err != nil {
		return errors.Wrap(err, "can't init metadata API")
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.ErrorContext(ctx, "Something went wrong, error during running HTTP server", err)
		}
	}()

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	logger.InfoContext(ctx, "Shutting down HTTP server...")
	if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "Failed while gracefully shutting down HTTP server", err)
	}
	if err := injector.Shutdown(); err != nil {
		logger.ErrorContext(ctx, "Failed while gracefully shutting down", err, slogx.String("event", "shutdown"))
	}
	return nil
}
