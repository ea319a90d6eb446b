package addresses

import (
	"github.com/tranvictor/addressbook/common"
)

// Document is the serialized form of a network's table:
// {name, chainId, addresses: {ROLE: "0x.." | {value, type}}}.
type Document struct {
	Name      string                `json:"name" yaml:"name"`
	ChainID   uint64                `json:"chainId" yaml:"chainId"`
	Addresses map[Role]common.Entry `json:"addresses" yaml:"addresses"`
}

func DocumentOf(s Set) Document {
	return Document{
		Name:      s.GetName(),
		ChainID:   s.GetChainID(),
		Addresses: s.Entries(),
	}
}
