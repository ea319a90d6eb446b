package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the number of hex characters after the 0x prefix.
const AddressLength = 2 * common.AddressLength

var (
	ErrInvalidAddress = errors.New("invalid address")

	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Address is a validated 20 byte hex address. It keeps the literal it was
// parsed from so lookups hand back exactly what was declared. The zero value
// means "not set".
type Address struct {
	raw  string
	addr common.Address
}

// ParseAddress accepts a 0x prefixed, 40 hex character string. Mixed case is
// allowed and kept as is; the EIP-55 checksum is not enforced.
func ParseAddress(s string) (Address, error) {
	if !addressPattern.MatchString(s) {
		return Address{}, fmt.Errorf("%q: %w", s, ErrInvalidAddress)
	}
	return Address{raw: s, addr: common.HexToAddress(s)}, nil
}

// MustAddress is ParseAddress for package level definitions. It panics on a
// malformed literal so a bad table never makes it past init.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}

func (a Address) IsZero() bool {
	return a.raw == ""
}

// String returns the literal as declared.
func (a Address) String() string {
	return a.raw
}

// Hex returns the EIP-55 checksummed form.
func (a Address) Hex() string {
	return a.addr.Hex()
}

// Common returns the go-ethereum representation.
func (a Address) Common() common.Address {
	return a.addr
}

// Equal compares the underlying bytes, ignoring the literal's casing.
func (a Address) Equal(o Address) bool {
	return a.addr == o.addr && a.IsZero() == o.IsZero()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.raw), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AddressInfo is an address qualified with the interface or contract type
// deployed at it.
type AddressInfo struct {
	Value Address `json:"value" yaml:"value"`
	Type  string  `json:"type" yaml:"type"`
}

func (ai AddressInfo) IsZero() bool {
	return ai.Value.IsZero()
}

func (ai AddressInfo) String() string {
	return fmt.Sprintf("%s (%s)", ai.Value, ai.Type)
}

// Entry is the uniform view of a registry value: a plain address when Type is
// empty, an AddressInfo otherwise.
type Entry struct {
	Value Address
	Type  string
}

func (e Entry) IsInfo() bool {
	return e.Type != ""
}

func (e Entry) Info() AddressInfo {
	return AddressInfo{Value: e.Value, Type: e.Type}
}

func (e Entry) String() string {
	if e.IsInfo() {
		return e.Info().String()
	}
	return e.Value.String()
}

// MarshalJSON keeps the shape of the source tables: a bare string for plain
// addresses and {"value", "type"} for typed ones.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsInfo() {
		return json.Marshal(e.Info())
	}
	return json.Marshal(e.Value)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var plain Address
	if err := json.Unmarshal(data, &plain); err == nil {
		*e = Entry{Value: plain}
		return nil
	}
	var info AddressInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return fmt.Errorf("entry must be an address or {value, type}: %w", err)
	}
	if info.Type == "" {
		return fmt.Errorf("entry %s: missing type", info.Value)
	}
	*e = Entry{Value: info.Value, Type: info.Type}
	return nil
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.IsInfo() {
		return e.Info(), nil
	}
	return e.Value.String(), nil
}
