package addresses

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tranvictor/addressbook/common"
	"github.com/tranvictor/addressbook/networks"
)

var (
	ErrNetworkNotFound  = fmt.Errorf("network not found")
	ErrRoleNotFound     = fmt.Errorf("role not found")
	ErrDuplicateName    = fmt.Errorf("duplicate network name")
	ErrDuplicateChainID = fmt.Errorf("duplicate chain id")
	ErrUndefinedNetwork = fmt.Errorf("network table not built with Define")
)

// Registry indexes network address tables by name and chain id. It is built
// once and never mutated, so it is safe for concurrent use.
type Registry struct {
	sets   []Set
	byName map[string]int
	byID   map[uint64]int
}

// NewRegistry indexes sets by name and chain id. Besides its own name, a set
// is reachable through the name and alternative names of the networks catalog
// entry with the same chain id, so "Ethereum", "mainnet" and "eth" all resolve
// to the same table. Every set must come from Define, unmodified.
func NewRegistry(sets ...Set) (*Registry, error) {
	r := &Registry{
		byName: map[string]int{},
		byID:   map[uint64]int{},
	}
	for i, s := range sets {
		if err := s.check(); err != nil {
			return nil, err
		}
		if prev, found := r.byID[s.GetChainID()]; found {
			return nil, fmt.Errorf(
				"%s and %s both use chain id %d: %w",
				sets[prev].GetName(), s.GetName(), s.GetChainID(), ErrDuplicateChainID,
			)
		}
		r.byID[s.GetChainID()] = i

		for _, name := range namesOf(s) {
			key := strings.ToLower(name)
			if prev, found := r.byName[key]; found && prev != i {
				return nil, fmt.Errorf(
					"%s and %s both answer to '%s': %w",
					sets[prev].GetName(), s.GetName(), name, ErrDuplicateName,
				)
			}
			r.byName[key] = i
		}
		r.sets = append(r.sets, s)
	}
	return r, nil
}

func mustNewRegistry(sets ...Set) *Registry {
	r, err := NewRegistry(sets...)
	if err != nil {
		panic(err)
	}
	return r
}

func namesOf(s Set) []string {
	names := []string{s.GetName()}
	if n, err := networks.GetNetworkByID(s.GetChainID()); err == nil {
		names = append(names, n.GetName())
		names = append(names, n.GetAlternativeNames()...)
	}
	return names
}

// Network resolves a network table by name, case-insensitively.
func (r *Registry) Network(name string) (Set, error) {
	i, found := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return r.sets[i], nil
}

func (r *Registry) NetworkByChainID(id uint64) (Set, error) {
	i, found := r.byID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return r.sets[i], nil
}

// Lookup returns the entry for role on the named network. A role the network
// does not declare, or declares but leaves unset, yields ErrRoleNotFound.
func (r *Registry) Lookup(network string, role Role) (common.Entry, error) {
	s, err := r.Network(network)
	if err != nil {
		return common.Entry{}, err
	}
	return s.Get(role)
}

func (r *Registry) LookupByChainID(id uint64, role Role) (common.Entry, error) {
	s, err := r.NetworkByChainID(id)
	if err != nil {
		return common.Entry{}, err
	}
	return s.Get(role)
}

// Entries returns a copy of every set role of the named network.
func (r *Registry) Entries(network string) (map[Role]common.Entry, error) {
	s, err := r.Network(network)
	if err != nil {
		return nil, err
	}
	return s.Entries(), nil
}

// Roles returns the set roles of the named network, sorted.
func (r *Registry) Roles(network string) ([]Role, error) {
	s, err := r.Network(network)
	if err != nil {
		return nil, err
	}
	return s.Roles(), nil
}

// Networks returns the tables in definition order.
func (r *Registry) Networks() []Set {
	return append([]Set{}, r.sets...)
}

func (r *Registry) Documents() []Document {
	docs := make([]Document, 0, len(r.sets))
	for _, s := range r.sets {
		docs = append(docs, DocumentOf(s))
	}
	return docs
}

// Validate re-checks every table against its struct and the registry wide
// invariants: chain ids are distinct and every value is a well formed
// address. NewRegistry already enforces all of it, so on a Registry built
// through it this reports nil.
func (r *Registry) Validate() error {
	var errs []error
	ids := map[uint64]string{}
	for _, s := range r.sets {
		if err := s.check(); err != nil {
			errs = append(errs, err)
		}
		if prev, found := ids[s.GetChainID()]; found {
			errs = append(errs, fmt.Errorf("%s and %s: %w", prev, s.GetName(), ErrDuplicateChainID))
		}
		ids[s.GetChainID()] = s.GetName()

		for _, role := range s.Roles() {
			e, err := s.Get(role)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !common.IsAddress(e.Value.String()) {
				errs = append(errs, fmt.Errorf(
					"%s on %s: %q: %w", role, s.GetName(), e.Value.String(), common.ErrInvalidAddress,
				))
			}
		}
	}
	return errors.Join(errs...)
}
