package networks

import (
	"fmt"
	"sort"
	"strings"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	Sepolia,
	OptimismMainnet,
	OptimismSepolia,
	ArbitrumMainnet,
}

var globalSupportedNetworks = mustNewSupportedNetworks(supportedNetworks)
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	ordered      []Network
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range n.ordered {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks(list []Network) (*networks, error) {
	result := networks{
		nil,
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range list {
		if existing, found := result.networksByID[n.GetChainID()]; found {
			return nil, fmt.Errorf(
				"networks '%s' and '%s' share chain id %d",
				existing.GetName(), n.GetName(), n.GetChainID(),
			)
		}
		result.networksByID[n.GetChainID()] = n

		names := append([]string{n.GetName()}, n.GetAlternativeNames()...)
		for _, name := range names {
			key := strings.ToLower(name)
			if _, found := result.networks[key]; found {
				return nil, fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
			result.networks[key] = n
		}
		result.ordered = append(result.ordered, n)
	}
	sort.SliceStable(result.ordered, func(i, j int) bool {
		return result.ordered[i].GetChainID() < result.ordered[j].GetChainID()
	})
	return &result, nil
}

func mustNewSupportedNetworks(list []Network) *networks {
	result, err := newSupportedNetworks(list)
	if err != nil {
		panic(err)
	}
	return result
}

// GetSupportedNetworks returns every built-in network ordered by chain id.
func GetSupportedNetworks() []Network {
	return append([]Network{}, globalSupportedNetworks.ordered...)
}

// GetNetwork resolves a network by its name or one of its alternative names,
// case-insensitively.
func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
