package addresses

import (
	"github.com/tranvictor/addressbook/common"
)

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	return mustNewRegistry(
		ethereumAddresses,
		sepoliaAddresses,
		optimismAddresses,
		optimismSepoliaAddresses,
	)
}

// Default is the registry of every built-in network table.
func Default() *Registry {
	return defaultRegistry
}

func Lookup(network string, role Role) (common.Entry, error) {
	return defaultRegistry.Lookup(network, role)
}

func LookupByChainID(id uint64, role Role) (common.Entry, error) {
	return defaultRegistry.LookupByChainID(id, role)
}

func Networks() []Set {
	return defaultRegistry.Networks()
}
