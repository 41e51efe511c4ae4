package evmclient

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/pkg/decimals"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

// Backend is the subset of the Ethereum JSON-RPC API used by Client.
// *ethclient.Client implements it.
type Backend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account ethcommon.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Close()
}

// Receipt is the settled result of a mint transaction.
type Receipt struct {
	TxHash            string
	BlockNumber       uint64
	GasUsed           uint64
	EffectiveGasPrice *big.Int
}

// Fee returns the amount of wei paid for the transaction.
func (r *Receipt) Fee() *big.Int {
	if r == nil || r.EffectiveGasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), r.EffectiveGasPrice)
}

// Client submits mint transactions to the RainbowCoin contract and waits for them to settle.
type Client struct {
	backend        Backend
	signer         *Signer
	contract       ethcommon.Address
	chainID        *big.Int
	gasLimit       uint64
	maxGasPrice    *uint256.Int // nil when uncapped
	receiptTimeout time.Duration
}

// New dials the configured endpoint and verifies that it serves the expected network
// and that a contract is deployed at contractAddress.
func New(ctx context.Context, network common.Network, contractAddress string, config Config) (*Client, error) {
	url := config.RPCURL
	if url == "" {
		if config.InfuraKey == "" {
			return nil, errors.Wrap(errs.ConfigurationError, "rpc url or infura key is required")
		}
		url = network.InfuraURL(config.InfuraKey)
	}

	ethClient, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rpc endpoint")
	}

	client, err := NewWithBackend(ctx, ethClient, network, contractAddress, config)
	if err != nil {
		ethClient.Close()
		return nil, errors.WithStack(err)
	}
	return client, nil
}

// NewWithBackend is New with an already connected backend.
func NewWithBackend(ctx context.Context, backend Backend, network common.Network, contractAddress string, config Config) (*Client, error) {
	if !ethcommon.IsHexAddress(contractAddress) {
		return nil, errors.Wrapf(errs.ConfigurationError, "invalid contract address %q", contractAddress)
	}
	contract := ethcommon.HexToAddress(contractAddress)

	signer, err := NewSigner(config.PrivateKey, config.Mnemonic, config.DerivationPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var maxGasPrice *uint256.Int
	if config.MaxGasPrice != "" {
		maxGasPrice, err = decimals.GweiToWei(config.MaxGasPrice)
		if err != nil {
			return nil, errors.Wrapf(errs.ConfigurationError, "invalid max gas price: %v", err)
		}
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain id")
	}
	if expected := network.ChainID(); network != common.NetworkLocal && expected != nil && expected.Cmp(chainID) != 0 {
		return nil, errors.Wrapf(errs.ConfigurationError, "rpc endpoint serves chain id %s, network %s expects %s", chainID, network, expected)
	}

	code, err := backend.CodeAt(ctx, contract, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get contract code")
	}
	if len(code) == 0 {
		return nil, errors.Wrapf(errs.ConfigurationError, "no contract deployed at %s on %s", contract, network)
	}

	logger.DebugContext(ctx, "Connected to EVM node",
		slogx.Stringer("network", network),
		slogx.Stringer("chain_id", chainID),
		slogx.String("contract", contract.Hex()),
		slogx.String("sender", signer.Address().Hex()),
	)

	return &Client{
		backend:        backend,
		signer:         signer,
		contract:       contract,
		chainID:        chainID,
		gasLimit:       utils.Default(config.GasLimit, DefaultGasLimit),
		maxGasPrice:    maxGasPrice,
		receiptTimeout: utils.Default(config.ReceiptTimeout, DefaultReceiptTimeout),
	}, nil
}

// Sender returns the address that signs mint transactions.
func (c *Client) Sender() string {
	return c.signer.Address().Hex()
}

// MintTo mints tokenID to recipient and blocks until the transaction is mined.
// A mined but failed transaction returns its receipt together with ErrOutOfGas or a *RevertError.
func (c *Client) MintTo(ctx context.Context, recipient string, tokenID uint64) (*Receipt, error) {
	if !ethcommon.IsHexAddress(recipient) {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid recipient address %q", recipient)
	}

	data, err := contractABI.Pack(mintMethod, ethcommon.HexToAddress(recipient), new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack mint call")
	}

	sender := c.signer.Address()
	nonce, err := c.backend.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nonce")
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas price")
	}
	if c.maxGasPrice != nil && gasPrice.Cmp(c.maxGasPrice.ToBig()) > 0 {
		return nil, errors.Wrapf(ErrGasPriceTooHigh, "suggested %s gwei, cap is %s gwei",
			decimals.WeiToGwei(gasPrice), decimals.WeiToGwei(c.maxGasPrice.ToBig()))
	}

	tx, err := c.signer.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      c.gasLimit,
		To:       &c.contract,
		Data:     data,
	}), c.chainID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to send transaction")
	}
	logger.DebugContext(ctx, "Mint transaction sent",
		slogx.Uint64("token_id", tokenID),
		slogx.String("tx_hash", tx.Hash().Hex()),
		slogx.Uint64("nonce", nonce),
	)

	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, errors.Wrapf(errs.Timeout, "transaction %s was not mined within %s", tx.Hash().Hex(), c.receiptTimeout)
		}
		return nil, errors.Wrapf(err, "failed to wait for transaction %s", tx.Hash().Hex())
	}

	result := &Receipt{
		TxHash:            receipt.TxHash.Hex(),
		BlockNumber:       receipt.BlockNumber.Uint64(),
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: utils.Default(receipt.EffectiveGasPrice, gasPrice),
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return result, nil
	}

	if receipt.GasUsed >= c.gasLimit {
		return result, errors.WithStack(ErrOutOfGas)
	}

	reason := c.revertReason(ctx, ethereum.CallMsg{
		From:     sender,
		To:       &c.contract,
		Gas:      c.gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	}, parentBlock(receipt.BlockNumber))
	return result, errors.WithStack(&RevertError{TxHash: result.TxHash, Reason: reason})
}

// parentBlock returns the block before blockNumber, nil (latest) when it is unknown or genesis.
func parentBlock(blockNumber *big.Int) *big.Int {
	if blockNumber == nil || blockNumber.Sign() <= 0 {
		return nil
	}
	return new(big.Int).Sub(blockNumber, big.NewInt(1))
}

// revertReason replays the call at blockNumber to recover the reason of a failed transaction.
// Replaying against the parent block keeps later transactions of the mined block out of the
// result, but earlier transactions of that block are not applied either, so a revert caused
// by one of them is reported with the reason the call gives at the parent state.
func (c *Client) revertReason(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) string {
	_, err := c.backend.CallContract(ctx, msg, blockNumber)
	if err == nil {
		return ""
	}
	if reason := decodeRevertReason(err); reason != "" {
		return reason
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "Failed to decode revert reason", slogx.Error(err))
	return ""
}

const executionRevertedPrefix = "execution reverted"

func decodeRevertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			if raw, decodeErr := hexutil.Decode(data); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return reason
				}
			}
		}
	}

	msg := err.Error()
	if idx := strings.Index(msg, executionRevertedPrefix); idx >= 0 {
		return strings.TrimSpace(strings.TrimPrefix(msg[idx+len(executionRevertedPrefix):], ":"))
	}
	return ""
}

func (c *Client) Close() {
	c.backend.Close()
}
