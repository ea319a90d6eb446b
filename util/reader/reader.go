package reader

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/addressbook/config"
	"github.com/tranvictor/addressbook/log"
)

// EthReader spreads calls over several nodes of one network. It stays on the
// current node until a call fails, then moves to the next one. It is safe
// for concurrent use; concurrent failures on one node advance past it once.
type EthReader struct {
	endpoints *config.Endpoints
	nodes     map[string]EthereumNode
}

func NewEthReader(endpoints *config.Endpoints) *EthReader {
	return newEthReader(endpoints, func(name, url string) EthereumNode {
		return NewOneNodeReader(name, url)
	})
}

// NewEthReaderWithCustomNodes is NewEthReader over a plain name => url map.
func NewEthReaderWithCustomNodes(nodes map[string]string) (*EthReader, error) {
	endpoints, err := config.NewEndpoints(nodes)
	if err != nil {
		return nil, err
	}
	return NewEthReader(endpoints), nil
}

func newEthReader(endpoints *config.Endpoints, dial func(name, url string) EthereumNode) *EthReader {
	nodes := map[string]EthereumNode{}
	for i := 0; i < endpoints.Len(); i++ {
		name, url := endpoints.Current()
		nodes[name] = dial(name, url)
		endpoints.Next()
	}
	return &EthReader{
		endpoints: endpoints,
		nodes:     nodes,
	}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

// withNode runs f against the current node and fails over to the others in
// turn. It gives up after every node has failed once or ctx is done.
func (er *EthReader) withNode(ctx context.Context, f func(n EthereumNode) error) error {
	errs := []error{}
	for i := 0; i < er.endpoints.Len(); i++ {
		name, _ := er.endpoints.Current()
		n := er.nodes[name]
		err := f(n)
		if err == nil {
			return nil
		}
		errs = append(errs, wrapError(err, n.NodeName()))
		if ctx.Err() != nil {
			break
		}
		next, _ := er.endpoints.Advance(name)
		log.Warnw("rpc call failed, switching node", "node", name, "next", next, "error", err.Error())
	}
	return fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) (code []byte, err error) {
	err = er.withNode(ctx, func(n EthereumNode) error {
		code, err = n.CodeAt(ctx, contract, blockNumber)
		return err
	})
	return code, err
}

func (er *EthReader) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	err = er.withNode(ctx, func(n EthereumNode) error {
		out, err = n.CallContract(ctx, call, blockNumber)
		return err
	})
	return out, err
}

func (er *EthReader) CurrentBlock(ctx context.Context) (block uint64, err error) {
	err = er.withNode(ctx, func(n EthereumNode) error {
		block, err = n.CurrentBlock(ctx)
		return err
	})
	return block, err
}

func (er *EthReader) Close() {
	for _, n := range er.nodes {
		n.Close()
	}
}

// ReadContract calls a view method of contract at the latest block and
// returns the unpacked outputs.
func ReadContract(ctx context.Context, caller ContractCaller, contract common.Address, a *abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := a.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", method, err)
	}
	out, err := caller.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s on %s: %w", method, contract.Hex(), err)
	}
	if len(out) == 0 {
		// eth_call on an address without code succeeds with no data
		return nil, fmt.Errorf("calling %s on %s: empty result", method, contract.Hex())
	}
	result, err := a.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", method, err)
	}
	return result, nil
}
