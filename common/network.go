package common

import (
	"fmt"
	"math/big"
)

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkSepolia Network = "sepolia"
	NetworkHolesky Network = "holesky"
	NetworkGoerli  Network = "goerli"
	NetworkRinkeby Network = "rinkeby"
	NetworkLocal   Network = "local"
)

type networkParams struct {
	chainID    int64
	openSeaAPI string
}

var supportedNetworks = map[Network]networkParams{
	NetworkMainnet: {chainID: 1, openSeaAPI: "https://api.opensea.io"},
	NetworkSepolia: {chainID: 11155111, openSeaAPI: "https://testnets-api.opensea.io"},
	NetworkHolesky: {chainID: 17000, openSeaAPI: "https://testnets-api.opensea.io"},
	NetworkGoerli:  {chainID: 5, openSeaAPI: "https://testnets-api.opensea.io"},
	NetworkRinkeby: {chainID: 4, openSeaAPI: "https://rinkeby-api.opensea.io"},
	NetworkLocal:   {chainID: 1337},
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// ChainID returns the EIP-155 chain id of the network, or nil if the network is unknown.
func (n Network) ChainID() *big.Int {
	params, ok := supportedNetworks[n]
	if !ok {
		return nil
	}
	return big.NewInt(params.chainID)
}

// InfuraURL returns the Infura JSON-RPC endpoint of the network for the given project key.
func (n Network) InfuraURL(key string) string {
	return fmt.Sprintf("https://%s.infura.io/v3/%s", n, key)
}

// ValidationURL returns the OpenSea asset validation URL of a minted token.
// Empty if the network has no OpenSea deployment.
func (n Network) ValidationURL(contractAddress string, tokenID uint64) string {
	params, ok := supportedNetworks[n]
	if !ok || params.openSeaAPI == "" {
		return ""
	}
	return fmt.Sprintf("%s/asset/%s/%d/validate?force_update=true", params.openSeaAPI, contractAddress, tokenID)
}

func (n Network) String() string {
	return string(n)
}
