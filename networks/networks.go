package networks

import (
	"sync"

	"github.com/tranvictor/addressbook/log"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected with SetNetwork, falling back
// to Ethereum mainnet.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()
	if cachedNetwork == nil {
		cachedNetwork = EthereumMainnet
	}
	return cachedNetwork
}

func SetNetwork(networkStr string) error {
	n, err := GetNetwork(networkStr)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if cachedNetwork != nil && cachedNetwork != n {
		log.Debugw("switched network", "network", n.GetName(), "chainId", n.GetChainID())
	} else {
		log.Debugw("network selected", "network", n.GetName(), "chainId", n.GetChainID())
	}
	cachedNetwork = n
	return nil
}
