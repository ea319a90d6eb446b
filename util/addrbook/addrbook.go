// Package addrbook turns raw hex addresses into human-readable labels.
//
// Commands use [Default], which answers from the address registry. Tests
// can inject [Map] instead.
package addrbook

// Unknown is the Desc of an address no resolver knows.
const Unknown = "unknown"

type Label struct {
	Address string
	Desc    string
}

func (l Label) Known() bool {
	return l.Desc != Unknown
}

// AddressResolver maps a hex address to a Label. An address it does not
// know gets Desc Unknown.
type AddressResolver interface {
	Resolve(addr string) Label
}
