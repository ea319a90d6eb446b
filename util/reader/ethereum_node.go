package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// ContractCaller is the read-only part of a node needed to call view
// functions. *ethclient.Client satisfies it.
type ContractCaller interface {
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type EthereumNode interface {
	ContractCaller
	NodeName() string
	NodeURL() string
	CurrentBlock(ctx context.Context) (uint64, error)
	Close()
}
