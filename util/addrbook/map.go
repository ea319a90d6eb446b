package addrbook

import (
	"strings"
)

// Map is an AddressResolver over a fixed set of lower-cased addresses.
//
//	r := addrbook.Map{
//	    "0xd3cf979e676265e4f6379749dece4708b9a22476": "Aave proxy admin",
//	}
type Map map[string]string

func (m Map) Resolve(addr string) Label {
	if desc, ok := m[strings.ToLower(addr)]; ok {
		return Label{Address: addr, Desc: desc}
	}
	return Label{Address: addr, Desc: Unknown}
}
