package addresses

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/tranvictor/addressbook/common"
)

// Set is the type-erased view of a NetworkAddresses, used by the registry and
// anything that walks every network.
type Set interface {
	GetName() string
	GetChainID() uint64
	Get(role Role) (common.Entry, error)
	Entries() map[Role]common.Entry
	Roles() []Role

	check() error
}

// NetworkAddresses is one network's address table. A is the network's address
// struct: Base plus whatever extension fields the network declares. Field
// access through Addresses is checked by the compiler; Get is the dynamic
// path for role keys only known at runtime.
type NetworkAddresses[A any] struct {
	Name      string
	ChainID   uint64
	Addresses A

	entries map[Role]common.Entry
	defined bool
}

// Define validates a network's table once. Nothing is re-validated on lookup.
func Define[A any](name string, chainID uint64, addrs A) (NetworkAddresses[A], error) {
	if strings.TrimSpace(name) == "" {
		return NetworkAddresses[A]{}, fmt.Errorf("network name is empty: %w", ErrInvalidSchema)
	}
	if chainID == 0 {
		return NetworkAddresses[A]{}, fmt.Errorf("network %s: chain id is zero: %w", name, ErrInvalidSchema)
	}
	entries, err := collectEntries(addrs)
	if err != nil {
		return NetworkAddresses[A]{}, fmt.Errorf("network %s: %w", name, err)
	}
	return NetworkAddresses[A]{
		Name:      name,
		ChainID:   chainID,
		Addresses: addrs,
		entries:   entries,
		defined:   true,
	}, nil
}

// MustDefine is Define for package level tables.
func MustDefine[A any](name string, chainID uint64, addrs A) NetworkAddresses[A] {
	n, err := Define(name, chainID, addrs)
	if err != nil {
		panic(err)
	}
	return n
}

func (n NetworkAddresses[A]) GetName() string {
	return n.Name
}

func (n NetworkAddresses[A]) GetChainID() uint64 {
	return n.ChainID
}

func (n NetworkAddresses[A]) Get(role Role) (common.Entry, error) {
	e, found := n.entries[role]
	if !found {
		return common.Entry{}, fmt.Errorf("role %s on network %s: %w", role, n.Name, ErrRoleNotFound)
	}
	return e, nil
}

// Entries returns a copy of the role map.
func (n NetworkAddresses[A]) Entries() map[Role]common.Entry {
	return maps.Clone(n.entries)
}

// Roles returns the roles set on this network, sorted.
func (n NetworkAddresses[A]) Roles() []Role {
	roles := lo.Keys(n.entries)
	slices.Sort(roles)
	return roles
}

// check fails for a table that did not come out of Define, and for a copy
// whose Addresses were edited afterwards, since Get would no longer agree
// with field access.
func (n NetworkAddresses[A]) check() error {
	if !n.defined {
		return fmt.Errorf("network '%s': %w", n.Name, ErrUndefinedNetwork)
	}
	if strings.TrimSpace(n.Name) == "" || n.ChainID == 0 {
		return fmt.Errorf("network '%s' (chain id %d): %w", n.Name, n.ChainID, ErrInvalidSchema)
	}
	entries, err := collectEntries(n.Addresses)
	if err != nil {
		return fmt.Errorf("network %s: %w", n.Name, err)
	}
	if !maps.Equal(entries, n.entries) {
		return fmt.Errorf("network %s: addresses changed after Define: %w", n.Name, ErrInvalidSchema)
	}
	return nil
}

func (n NetworkAddresses[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(DocumentOf(n))
}

func (n NetworkAddresses[A]) MarshalYAML() (interface{}, error) {
	return DocumentOf(n), nil
}
