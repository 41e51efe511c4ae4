package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/internal/config"
	"github.com/gaze-network/rainbow-minter/internal/postgres"
	"github.com/gaze-network/rainbow-minter/modules/minter"
	minterpostgres "github.com/gaze-network/rainbow-minter/modules/minter/repository/postgres"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gaze-network/rainbow-minter/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// exportToStdout is the --export value that streams the parquet file to stdout.
const exportToStdout = "-"

type mintCmdOptions struct {
	Export string
}

func NewMintCommand() *cobra.Command {
	opts := &mintCmdOptions{}

	mintCmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint a batch of RainbowCoins to the recipient address",
		Example: `rainbow mint --network sepolia --start-id 0 --total-count 10
rainbow mint --random --total-count 5 --export run.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mintHandler(opts, cmd, args)
		},
	}

	// Add local flags
	flags := mintCmd.Flags()
	flags.Int64("start-id", 0, "First token id of a sequential run")
	flags.Int64("total-count", 1, "Number of tokens to mint")
	flags.Bool("random", false, "Mint random token ids instead of a sequential range")
	flags.String("recipient", "", "Address receiving the minted tokens")
	flags.String("contract", "", "Address of the RainbowCoin contract")
	flags.Bool("ledger", false, "Record the run in the Postgres mint ledger")
	flags.Int("metrics-port", 0, "Serve Prometheus metrics on this port during the run")
	flags.StringVar(&opts.Export, "export", "", "Write the outcomes of the run to a parquet file, E.g. `run.parquet`, or - for stdout")

	// Bind flags to configuration
	config.BindPFlag("mint.start_id", flags.Lookup("start-id"))
	config.BindPFlag("mint.total_count", flags.Lookup("total-count"))
	config.BindPFlag("mint.randomize", flags.Lookup("random"))
	config.BindPFlag("mint.recipient_address", flags.Lookup("recipient"))
	config.BindPFlag("mint.contract_address", flags.Lookup("contract"))
	config.BindPFlag("mint.ledger.enabled", flags.Lookup("ledger"))
	config.BindPFlag("metrics.port", flags.Lookup("metrics-port"))

	return mintCmd
}

func mintHandler(opts *mintCmdOptions, cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	ctx := logger.WithContext(cmd.Context(), slogx.Stringer("network", conf.Network))

	// Validate inputs and configurations before any remote call
	runConfig := minter.NewRunConfig(conf.Mint, conf.Network)
	if err := runConfig.Validate(); err != nil {
		return errors.WithStack(err)
	}

	injector := do.New()
	do.ProvideValue(injector, conf)

	// Initialize chain client
	do.Provide(injector, func(i do.Injector) (*evmclient.Client, error) {
		conf := do.MustInvoke[config.Config](i)

		start := time.Now()
		client, err := evmclient.New(ctx, conf.Network, conf.Mint.ContractAddress, conf.Chain)
		if err != nil {
			return nil, errors.Wrap(err, "can't create chain client")
		}
		logger.InfoContext(ctx, "Connected to Ethereum JSON-RPC node",
			slogx.String("sender", client.Sender()),
			slog.Duration("latency", time.Since(start)),
		)
		return client, nil
	})

	// Initialize mint ledger database
	do.Provide(injector, func(i do.Injector) (*pgxpool.Pool, error) {
		conf := do.MustInvoke[config.Config](i)

		pg, err := postgres.NewPool(ctx, conf.Mint.Ledger.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for mint ledger")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		return pg, nil
	})

	client, err := do.Invoke[*evmclient.Client](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	defer client.Close()

	// Progress goes to stderr when stdout carries the export
	progress := cmd.OutOrStdout()
	if opts.Export == exportToStdout {
		progress = cmd.ErrOrStderr()
	}
	observers := []minter.Observer{minter.NewPrinter(progress)}
	if conf.Mint.Ledger.Enabled {
		pg, err := do.Invoke[*pgxpool.Pool](injector)
		if err != nil {
			return errors.WithStack(err)
		}
		defer pg.Close()
		observers = append(observers, minter.NewLedger(minterpostgres.NewRepository(pg)))
	}

	if conf.Metrics.Port > 0 {
		server := metrics.NewServer(conf.Metrics.Port)
		go func() {
			logger.InfoContext(ctx, "Started metrics server", slog.Int("port", conf.Metrics.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorContext(ctx, "Metrics server stopped", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	m, err := minter.New(client, runConfig,
		minter.WithClassifier(minter.NewClassifier(conf.Mint.DuplicateMarkers, conf.Mint.DuplicateReasons)),
		minter.WithObservers(observers...),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	report, runErr := m.Run(ctx)

	if opts.Export != "" && report != nil {
		var err error
		if opts.Export == exportToStdout {
			err = report.WriteParquet(cmd.OutOrStdout())
		} else {
			err = report.ExportParquet(opts.Export)
		}
		if err != nil {
			logger.ErrorContext(ctx, "Failed to export run", err, slogx.String("path", opts.Export))
		} else {
			logger.InfoContext(ctx, "Exported run", slogx.String("path", opts.Export), slogx.Int("outcomes", len(report.Outcomes)))
		}
	}

	if code := report.ExitCode(); code != 0 {
		return &exitError{code: code, err: runErr}
	}
	return nil
}
