package evmclient

import "time"

const (
	// DefaultGasLimit is the fixed gas limit of every mint transaction.
	DefaultGasLimit uint64 = 1_000_000

	// DefaultDerivationPath is the BIP-44 path of the first Ethereum account.
	DefaultDerivationPath = "m/44'/60'/0'/0/0"

	DefaultReceiptTimeout = 5 * time.Minute
)

type Config struct {
	// RPCURL is the JSON-RPC endpoint. When empty, the Infura endpoint of the network is used.
	RPCURL    string `mapstructure:"rpc_url"`
	InfuraKey string `mapstructure:"infura_key"`

	// Exactly one of PrivateKey or Mnemonic must be set.
	PrivateKey     string `mapstructure:"private_key"`
	Mnemonic       string `mapstructure:"mnemonic"`
	DerivationPath string `mapstructure:"derivation_path"`

	GasLimit uint64 `mapstructure:"gas_limit"`
	// MaxGasPrice caps the suggested gas price, in gwei, E.g. "30" or "1.5". No cap when empty.
	MaxGasPrice    string        `mapstructure:"max_gas_price"`
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout"`
}
