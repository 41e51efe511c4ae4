package config

import (
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common"
	metadataconfig "github.com/gaze-network/rainbow-minter/modules/metadata/config"
	minterconfig "github.com/gaze-network/rainbow-minter/modules/minter/config"
	"github.com/gaze-network/rainbow-minter/pkg/colourlovers"
	"github.com/gaze-network/rainbow-minter/pkg/evmclient"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gaze-network/rainbow-minter/pkg/middleware/requestlogger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit     bool
	mu         sync.Mutex
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkSepolia,
		Chain: evmclient.Config{
			GasLimit:       evmclient.DefaultGasLimit,
			DerivationPath: evmclient.DefaultDerivationPath,
			ReceiptTimeout: evmclient.DefaultReceiptTimeout,
		},
		Mint: minterconfig.Config{
			TotalCount: 1,
		},
		HTTPServer: HTTPServerConfig{
			Port: 5000,
			Logger: requestlogger.Config{
				SkipPaths: []string{"/", "/metrics"},
			},
		},
		Metadata: metadataconfig.Config{
			ExternalURL:       "https://rainbowco.in",
			PublicURL:         "http://localhost:5000",
			ColourLoversURL:   colourlovers.DefaultBaseURL,
			LookupTimeout:     colourlovers.DefaultTimeout,
			FactoryImageURL:   "https://storage.googleapis.com/rainbowco.in/factory/random-coin.png",
			ImageObjectPrefix: "coins",
		},
	}
)

type Config struct {
	Logger     logger.Config         `mapstructure:"logger"`
	Network    common.Network        `mapstructure:"network"`
	Chain      evmclient.Config      `mapstructure:"chain"`
	Mint       minterconfig.Config   `mapstructure:"mint"`
	HTTPServer HTTPServerConfig      `mapstructure:"http_server"`
	Metadata   metadataconfig.Config `mapstructure:"metadata"`
	Metrics    MetricsConfig         `mapstructure:"metrics"`
}

type HTTPServerConfig struct {
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
	// TrustedIPHeader is a header set by a trusted proxy holding the client IP, e.g. CF-Connecting-IP.
	TrustedIPHeader string `mapstructure:"trusted_ip_header"`
}

type MetricsConfig struct {
	// Port serves `/metrics` while a mint run is in progress. 0 disables it.
	Port int `mapstructure:"port"`
}

// legacyEnvKeys are the plain .env variable names of the older deploy scripts.
// They stay supported so an existing `.env` file keeps working.
var legacyEnvKeys = map[string]string{
	"network":                "NETWORK",
	"chain.mnemonic":         "MNEMONIC",
	"chain.infura_key":       "INFURA_KEY",
	"mint.contract_address":  "NFT_CONTRACT_ADDRESS",
	"mint.recipient_address": "OWNER_ADDRESS",
}

// Parse parse the configuration from environment variables
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
// Example (where serverCmd is a Cobra instance):
//
//	serverCmd.Flags().Int("port", 1138, "Port to run Application server on")
//	Viper.BindPFlag("port", serverCmd.Flags().Lookup("port"))
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for this key.
// SetDefault is case-insensitive for a key.
// Default only used when no value is provided by the user via flag, config or ENV.
func SetDefault(key string, value any) { viper.SetDefault(key, value) }

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))

	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.WarnContext(ctx, "Failed to load .env file", slogx.Error(err))
		}
	})

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range legacyEnvKeys {
		_ = viper.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) || errors.Is(err, fs.ErrNotExist) {
			logger.DebugContext(ctx, "Config file not found, use default values and environment variables")
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
