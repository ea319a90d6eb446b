package db

import (
	"fmt"
	"strings"

	"github.com/tranvictor/addressbook/addresses"
)

type AddressDesc struct {
	Network string
	ChainID uint64
	Role    addresses.Role
	Address string
	Type    string
}

func (ad AddressDesc) Desc() string {
	if ad.Type != "" {
		return fmt.Sprintf("%s %s (%s)", ad.Network, ad.Role, ad.Type)
	}
	return fmt.Sprintf("%s %s", ad.Network, ad.Role)
}

type FuzzySource []AddressDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf(
		"%s_%s_%s",
		self[i].Network,
		strings.Replace(string(self[i].Role), " ", "_", -1),
		self[i].Address,
	)
}

// NewFuzzySource lists every entry of every network in r, networks in
// definition order and roles sorted within a network.
func NewFuzzySource(r *addresses.Registry) FuzzySource {
	result := FuzzySource{}
	for _, s := range r.Networks() {
		entries := s.Entries()
		for _, role := range s.Roles() {
			e := entries[role]
			result = append(result, AddressDesc{
				Network: s.GetName(),
				ChainID: s.GetChainID(),
				Role:    role,
				Address: e.Value.String(),
				Type:    e.Type,
			})
		}
	}
	return result
}
