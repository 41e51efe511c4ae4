package evmclient

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

type fakeBackend struct {
	mu       sync.Mutex
	chainID  *big.Int
	code     []byte
	nonce    uint64
	gasPrice *big.Int
	sendErr  error
	callErr  error
	// receipt builds the receipt of a sent transaction, nil means never mined.
	receipt func(tx *types.Transaction) *types.Receipt

	sent       []*types.Transaction
	calls      []ethereum.CallMsg
	callBlocks []*big.Int
	closed     bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:  common.NetworkSepolia.ChainID(),
		code:     []byte{0x60, 0x80},
		gasPrice: big.NewInt(2_000_000_000),
		receipt: func(tx *types.Transaction) *types.Receipt {
			return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash(), BlockNumber: big.NewInt(100), GasUsed: 80_000}
		},
	}
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) { return f.chainID, nil }

func (f *fakeBackend) CodeAt(context.Context, ethcommon.Address, *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, ethcommon.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) { return f.gasPrice, nil }

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	f.nonce++
	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash ethcommon.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.sent {
		if tx.Hash() == hash {
			if r := f.receipt(tx); r != nil {
				return r, nil
			}
		}
	}
	return nil, ethereum.NotFound
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	f.callBlocks = append(f.callBlocks, blockNumber)
	return nil, f.callErr
}

func (f *fakeBackend) Close() { f.closed = true }

type revertDataError struct {
	data string
}

func (e revertDataError) Error() string          { return "execution reverted" }
func (e revertDataError) ErrorData() interface{} { return e.data }

func packRevert(t *testing.T, reason string) string {
	t.Helper()
	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)
	return hexutil.Encode(append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...))
}

func newTestClient(t *testing.T, backend *fakeBackend, config Config) *Client {
	t.Helper()
	if config.PrivateKey == "" && config.Mnemonic == "" {
		config.PrivateKey = testPrivateKey
	}
	client, err := NewWithBackend(context.Background(), backend, common.NetworkSepolia, testContract, config)
	require.NoError(t, err)
	return client
}

func TestNewWithBackend(t *testing.T) {
	ctx := context.Background()
	config := Config{PrivateKey: testPrivateKey}

	t.Run("ok", func(t *testing.T) {
		client, err := NewWithBackend(ctx, newFakeBackend(), common.NetworkSepolia, testContract, config)
		require.NoError(t, err)
		assert.Equal(t, testAddress, client.Sender())
		assert.Equal(t, DefaultGasLimit, client.gasLimit)
		assert.Equal(t, DefaultReceiptTimeout, client.receiptTimeout)
	})
	t.Run("invalid_contract_address", func(t *testing.T) {
		_, err := NewWithBackend(ctx, newFakeBackend(), common.NetworkSepolia, "0x1234", config)
		assert.ErrorIs(t, err, errs.ConfigurationError)
	})
	t.Run("chain_id_mismatch", func(t *testing.T) {
		backend := newFakeBackend()
		backend.chainID = big.NewInt(1)
		_, err := NewWithBackend(ctx, backend, common.NetworkSepolia, testContract, config)
		assert.ErrorIs(t, err, errs.ConfigurationError)
	})
	t.Run("local_network_accepts_any_chain_id", func(t *testing.T) {
		backend := newFakeBackend()
		backend.chainID = big.NewInt(31337)
		_, err := NewWithBackend(ctx, backend, common.NetworkLocal, testContract, config)
		assert.NoError(t, err)
	})
	t.Run("no_contract_code", func(t *testing.T) {
		backend := newFakeBackend()
		backend.code = nil
		_, err := NewWithBackend(ctx, backend, common.NetworkSepolia, testContract, config)
		assert.ErrorIs(t, err, errs.ConfigurationError)
	})
	t.Run("max_gas_price", func(t *testing.T) {
		client, err := NewWithBackend(ctx, newFakeBackend(), common.NetworkSepolia, testContract, Config{PrivateKey: testPrivateKey, MaxGasPrice: "1.5"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1_500_000_000), client.maxGasPrice.Uint64())
	})
	t.Run("invalid_max_gas_price", func(t *testing.T) {
		_, err := NewWithBackend(ctx, newFakeBackend(), common.NetworkSepolia, testContract, Config{PrivateKey: testPrivateKey, MaxGasPrice: "lots"})
		assert.ErrorIs(t, err, errs.ConfigurationError)
	})
	t.Run("missing_credentials", func(t *testing.T) {
		_, err := NewWithBackend(ctx, newFakeBackend(), common.NetworkSepolia, testContract, Config{})
		assert.ErrorIs(t, err, errs.ConfigurationError)
	})
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(context.Background(), common.NetworkSepolia, testContract, Config{PrivateKey: testPrivateKey})
	assert.ErrorIs(t, err, errs.ConfigurationError)
}

func TestMintTo(t *testing.T) {
	ctx := context.Background()
	recipient := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	t.Run("success", func(t *testing.T) {
		backend := newFakeBackend()
		client := newTestClient(t, backend, Config{GasLimit: 500_000})

		receipt, err := client.MintTo(ctx, recipient, 0xFF8800)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)

		tx := backend.sent[0]
		assert.Equal(t, tx.Hash().Hex(), receipt.TxHash)
		assert.EqualValues(t, 100, receipt.BlockNumber)
		assert.EqualValues(t, 500_000, tx.Gas())
		assert.Equal(t, testContract, tx.To().Hex())
		assert.Equal(t, big.NewInt(80_000*2_000_000_000), receipt.Fee())

		sender, err := types.Sender(types.LatestSignerForChainID(backend.chainID), tx)
		require.NoError(t, err)
		assert.Equal(t, testAddress, sender.Hex())

		method, err := contractABI.MethodById(tx.Data()[:4])
		require.NoError(t, err)
		assert.Equal(t, "mintTo", method.Name)
		args, err := method.Inputs.Unpack(tx.Data()[4:])
		require.NoError(t, err)
		assert.Equal(t, ethcommon.HexToAddress(recipient), args[0])
		assert.Equal(t, big.NewInt(0xFF8800), args[1])
	})
	t.Run("sequential_nonces", func(t *testing.T) {
		backend := newFakeBackend()
		client := newTestClient(t, backend, Config{})
		for i := uint64(0); i < 3; i++ {
			_, err := client.MintTo(ctx, recipient, i)
			require.NoError(t, err)
		}
		for i, tx := range backend.sent {
			assert.EqualValues(t, i, tx.Nonce())
		}
	})
	t.Run("invalid_recipient", func(t *testing.T) {
		backend := newFakeBackend()
		client := newTestClient(t, backend, Config{})
		_, err := client.MintTo(ctx, "rainbow", 1)
		assert.ErrorIs(t, err, errs.InvalidArgument)
		assert.Empty(t, backend.sent)
	})
	t.Run("send_failure", func(t *testing.T) {
		backend := newFakeBackend()
		backend.sendErr = errors.New("insufficient funds for gas * price + value")
		client := newTestClient(t, backend, Config{})
		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorContains(t, err, "insufficient funds")
	})
	t.Run("gas_price_above_cap", func(t *testing.T) {
		backend := newFakeBackend()
		client := newTestClient(t, backend, Config{MaxGasPrice: "1"})
		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, ErrGasPriceTooHigh)
		assert.ErrorContains(t, err, "suggested 2 gwei, cap is 1 gwei")
		assert.Empty(t, backend.sent)
	})
	t.Run("gas_price_at_cap", func(t *testing.T) {
		backend := newFakeBackend()
		client := newTestClient(t, backend, Config{MaxGasPrice: "2"})
		_, err := client.MintTo(ctx, recipient, 1)
		assert.NoError(t, err)
	})
	t.Run("out_of_gas", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(tx *types.Transaction) *types.Receipt {
			return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash(), BlockNumber: big.NewInt(1), GasUsed: tx.Gas()}
		}
		client := newTestClient(t, backend, Config{})
		receipt, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, ErrOutOfGas)
		assert.Contains(t, err.Error(), OutOfGasMessage)
		assert.NotNil(t, receipt)
		assert.Empty(t, backend.calls)
	})
	t.Run("revert_with_data", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(tx *types.Transaction) *types.Receipt {
			return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash(), BlockNumber: big.NewInt(1), GasUsed: 30_000}
		}
		backend.callErr = revertDataError{data: packRevert(t, "ERC721: token already minted")}
		client := newTestClient(t, backend, Config{})

		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, ErrReverted)
		var revertErr *RevertError
		require.True(t, errors.As(err, &revertErr))
		assert.Equal(t, "ERC721: token already minted", revertErr.Reason)
		assert.Len(t, backend.calls, 1)
	})
	t.Run("revert_replayed_at_parent_block", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(tx *types.Transaction) *types.Receipt {
			return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash(), BlockNumber: big.NewInt(100), GasUsed: 30_000}
		}
		backend.callErr = errors.New("execution reverted: Ownable: caller is not the owner")
		client := newTestClient(t, backend, Config{})

		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, ErrReverted)
		require.Len(t, backend.callBlocks, 1)
		assert.EqualValues(t, 99, backend.callBlocks[0].Int64())
	})
	t.Run("revert_with_message", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(tx *types.Transaction) *types.Receipt {
			return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash(), BlockNumber: big.NewInt(1), GasUsed: 30_000}
		}
		backend.callErr = errors.New("execution reverted: Ownable: caller is not the owner")
		client := newTestClient(t, backend, Config{})

		_, err := client.MintTo(ctx, recipient, 1)
		var revertErr *RevertError
		require.True(t, errors.As(err, &revertErr))
		assert.Equal(t, "Ownable: caller is not the owner", revertErr.Reason)
	})
	t.Run("receipt_timeout", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(*types.Transaction) *types.Receipt { return nil }
		client := newTestClient(t, backend, Config{ReceiptTimeout: 20 * time.Millisecond})

		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, errs.Timeout)
	})
	t.Run("canceled", func(t *testing.T) {
		backend := newFakeBackend()
		backend.receipt = func(*types.Transaction) *types.Receipt { return nil }
		client := newTestClient(t, backend, Config{})

		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := client.MintTo(ctx, recipient, 1)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, errs.Timeout)
	})
}

func TestClose(t *testing.T) {
	backend := newFakeBackend()
	newTestClient(t, backend, Config{}).Close()
	assert.True(t, backend.closed)
}

func TestReceiptFee(t *testing.T) {
	var nilReceipt *Receipt
	assert.Zero(t, nilReceipt.Fee().Sign())
	assert.Zero(t, (&Receipt{GasUsed: 10}).Fee().Sign())
	assert.Equal(t, big.NewInt(210), (&Receipt{GasUsed: 21, EffectiveGasPrice: big.NewInt(10)}).Fee())
}

func TestDecodeRevertReason(t *testing.T) {
	testcases := []struct {
		name     string
		err      error
		expected string
	}{
		{"data", revertDataError{data: packRevert(t, "ERC721: token already minted")}, "ERC721: token already minted"},
		{"message", errors.New("execution reverted: ERC721: token already minted"), "ERC721: token already minted"},
		{"bare", errors.New("execution reverted"), ""},
		{"bad_data", revertDataError{data: "0x1234"}, ""},
		{"other", errors.New("connection refused"), ""},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, decodeRevertReason(tc.err))
		})
	}
}

func TestParentBlock(t *testing.T) {
	assert.Nil(t, parentBlock(nil))
	assert.Nil(t, parentBlock(big.NewInt(0)))
	assert.EqualValues(t, 0, parentBlock(big.NewInt(1)).Int64())
	assert.EqualValues(t, 41, parentBlock(big.NewInt(42)).Int64())
}

func TestRevertError(t *testing.T) {
	err := &RevertError{TxHash: "0xabc", Reason: "ERC721: token already minted"}
	assert.Equal(t, "transaction 0xabc reverted: ERC721: token already minted", err.Error())
	assert.ErrorIs(t, err, ErrReverted)
	assert.Equal(t, "transaction 0xabc reverted", (&RevertError{TxHash: "0xabc"}).Error())
}
