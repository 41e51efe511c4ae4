package evmclient

import (
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

const mintMethod = "mintTo"

// rainbowCoinABI is the subset of the RainbowCoin ERC-721 contract used by the minter.
const rainbowCoinABI = `[
	{
		"inputs": [
			{"internalType": "address", "name": "_to", "type": "address"},
			{"internalType": "uint256", "name": "_rgbInt", "type": "uint256"}
		],
		"name": "mintTo",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var contractABI = utils.Must(abi.JSON(strings.NewReader(rainbowCoinABI)))
