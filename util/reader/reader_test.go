package reader

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addressbook/config"
)

const decimalsABI = `[{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}]`

type fakeNode struct {
	name   string
	out    []byte
	err    error
	calls  int
	closed bool
}

func (f *fakeNode) NodeName() string { return f.name }
func (f *fakeNode) NodeURL() string  { return "http://" + f.name }
func (f *fakeNode) Close()           { f.closed = true }

func (f *fakeNode) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

func (f *fakeNode) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

func (f *fakeNode) CurrentBlock(ctx context.Context) (uint64, error) {
	f.calls++
	return 100, f.err
}

func newTestReader(t *testing.T, nodes ...*fakeNode) *EthReader {
	t.Helper()
	urls := map[string]string{}
	byName := map[string]*fakeNode{}
	for _, n := range nodes {
		urls[n.name] = "http://" + n.name
		byName[n.name] = n
	}
	endpoints, err := config.NewEndpoints(urls)
	require.NoError(t, err)
	return newEthReader(endpoints, func(name, url string) EthereumNode {
		return byName[name]
	})
}

func currentNode(er *EthReader) string {
	name, _ := er.endpoints.Current()
	return name
}

func TestEthReaderFailsOver(t *testing.T) {
	bad := &fakeNode{name: config.CustomNode, err: errors.New("429 too many requests")}
	good := &fakeNode{name: "mainnet-publicnode", out: []byte{1}}
	er := newTestReader(t, bad, good)
	assert.Equal(t, config.CustomNode, currentNode(er))

	out, err := er.CallContract(context.Background(), ethereum.CallMsg{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, out)
	assert.Equal(t, "mainnet-publicnode", currentNode(er))

	// sticks with the node that worked
	_, err = er.CodeAt(context.Background(), common.Address{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, bad.calls)
	assert.Equal(t, 2, good.calls)

	er.Close()
	assert.True(t, bad.closed)
	assert.True(t, good.closed)
}

func TestEthReaderAllNodesFail(t *testing.T) {
	a := &fakeNode{name: "a", err: errors.New("down")}
	b := &fakeNode{name: "b", err: errors.New("down too")}
	er := newTestReader(t, a, b)

	_, err := er.CurrentBlock(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "couldn't read from any nodes")
	assert.ErrorContains(t, err, "a: down")
	assert.ErrorContains(t, err, "b: down too")
}

func TestReadContract(t *testing.T) {
	erc20, err := abi.JSON(strings.NewReader(decimalsABI))
	require.NoError(t, err)
	packed, err := erc20.Methods["decimals"].Outputs.Pack(uint8(18))
	require.NoError(t, err)

	token := common.HexToAddress("0x40D16FC0246aD3160Ccc09B8D0D3A2cD28aE6C2f")
	out, err := ReadContract(context.Background(), &fakeNode{name: "n", out: packed}, token, &erc20, "decimals")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint8(18), out[0])

	_, err = ReadContract(context.Background(), &fakeNode{name: "n"}, token, &erc20, "decimals")
	assert.ErrorContains(t, err, "empty result")

	_, err = ReadContract(context.Background(), &fakeNode{name: "n"}, token, &erc20, "balanceOf")
	assert.ErrorContains(t, err, "packing balanceOf")
}

// lockedNode is a fakeNode that can be shared between goroutines.
type lockedNode struct {
	mu sync.Mutex
	fakeNode
}

func (l *lockedNode) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeNode.CallContract(ctx, call, blockNumber)
}

func TestEthReaderConcurrentFailuresAdvanceOnce(t *testing.T) {
	nodes := map[string]*lockedNode{
		"a": {fakeNode: fakeNode{name: "a", err: errors.New("429 too many requests")}},
		"b": {fakeNode: fakeNode{name: "b", out: []byte{1}}},
		"c": {fakeNode: fakeNode{name: "c", out: []byte{2}}},
	}
	urls := map[string]string{}
	for name := range nodes {
		urls[name] = "http://" + name
	}
	endpoints, err := config.NewEndpoints(urls)
	require.NoError(t, err)
	er := newEthReader(endpoints, func(name, url string) EthereumNode {
		return nodes[name]
	})
	require.Equal(t, "a", currentNode(er))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := er.CallContract(context.Background(), ethereum.CallMsg{}, nil)
			assert.NoError(t, err)
			assert.Equal(t, []byte{1}, out)
		}()
	}
	wg.Wait()

	assert.Equal(t, "b", currentNode(er))
	assert.Equal(t, 0, nodes["c"].calls)
}
