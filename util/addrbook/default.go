package addrbook

import (
	"strings"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/db"
)

// Default resolves against a registry, optionally limited to one chain.
type Default struct {
	reg     *addresses.Registry
	chainID uint64
}

// NewDefault returns a resolver over reg. A chainID of 0 matches entries of
// every network, so one address may resolve to several roles.
func NewDefault(reg *addresses.Registry, chainID uint64) AddressResolver {
	return Default{reg: reg, chainID: chainID}
}

func (r Default) Resolve(addr string) Label {
	descs := []string{}
	for _, ad := range db.ReverseLookup(r.reg, addr) {
		if r.chainID != 0 && ad.ChainID != r.chainID {
			continue
		}
		descs = append(descs, ad.Desc())
	}
	if len(descs) == 0 {
		return Label{Address: addr, Desc: Unknown}
	}
	return Label{Address: addr, Desc: strings.Join(descs, ", ")}
}
