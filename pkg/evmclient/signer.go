package evmclient

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/tyler-smith/go-bip39"
)

// Signer holds the key that signs mint transactions.
type Signer struct {
	key     *ecdsa.PrivateKey
	address ethcommon.Address
}

// NewSigner creates a signer from either a hex encoded private key or a BIP-39 mnemonic.
func NewSigner(privateKey, mnemonic, derivationPath string) (*Signer, error) {
	privateKey = strings.TrimSpace(privateKey)
	mnemonic = strings.TrimSpace(mnemonic)

	var (
		priv *btcec.PrivateKey
		err  error
	)
	switch {
	case privateKey != "" && mnemonic != "":
		return nil, errors.Wrap(errs.ConfigurationError, "only one of private key or mnemonic can be set")
	case privateKey != "":
		priv, err = parsePrivateKey(privateKey)
	case mnemonic != "":
		priv, err = deriveFromMnemonic(mnemonic, derivationPath)
	default:
		return nil, errors.Wrap(errs.ConfigurationError, "private key or mnemonic is required")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	key, err := crypto.ToECDSA(priv.Serialize())
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 private key")
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *Signer) Address() ethcommon.Address {
	return s.address
}

// SignTx signs tx with the EIP-155 signer of chainID.
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}
	return signed, nil
}

func parsePrivateKey(s string) (*btcec.PrivateKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrap(errs.ConfigurationError, "private key must be hex encoded")
	}
	if len(b) != btcec.PrivKeyBytesLen {
		return nil, errors.Wrapf(errs.ConfigurationError, "private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(b))
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

func deriveFromMnemonic(mnemonic string, derivationPath string) (*btcec.PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrapf(errs.ConfigurationError, "invalid mnemonic: %v", err)
	}
	if derivationPath == "" {
		derivationPath = DefaultDerivationPath
	}
	path, err := accounts.ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, errors.Wrapf(errs.ConfigurationError, "invalid derivation path %q: %v", derivationPath, err)
	}

	// the chain params only affect the serialized form of extended keys, never the derived key itself.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}
	for _, index := range path {
		key, err = key.Derive(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key %d", index)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get private key")
	}
	return priv, nil
}
