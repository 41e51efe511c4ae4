package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/internal/config"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:           "rainbow",
	Long:          `Mint RainbowCoin ERC-721 tokens and serve their metadata.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", string(common.NetworkSepolia), "network to connect to, E.g. `mainnet`, `sepolia` or `local`")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)
		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})

	cmd.AddCommand(
		NewMintCommand(),
		NewServeCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// Execute runs the root command and exits the process with its exit code.
func Execute(ctx context.Context) {
	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			logger.ErrorContext(ctx, "Command failed", exitErr.err)
		}
		return exitErr.code
	}
	if errors.Is(err, errs.ConfigurationError) {
		logger.ErrorContext(ctx, "Invalid configuration", err)
		return 1
	}
	logger.ErrorContext(ctx, "Command failed", err)
	return 1
}
