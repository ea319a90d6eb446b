package db

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tranvictor/addressbook/addresses"
)

const maxMatches = 10

func getAddressMatches(input string, source FuzzySource) ([]AddressDesc, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []AddressDesc{}
	scores := []int{}
	for i := 0; i < maxMatches; i++ {
		if i < len(matches) {
			result = append(result, source[matches[i].Index])
			scores = append(scores, matches[i].Score)
		} else {
			break
		}
	}
	return result, scores
}

// GetAddresses returns at most 10 entries of r matching input, best first.
// The input is matched against "<network>_<ROLE>_<address>".
func GetAddresses(r *addresses.Registry, input string) ([]AddressDesc, []int) {
	return getAddressMatches(input, NewFuzzySource(r))
}

func GetAddress(r *addresses.Registry, input string) (AddressDesc, error) {
	matches, _ := getAddressMatches(input, NewFuzzySource(r))
	if len(matches) == 0 {
		return AddressDesc{}, fmt.Errorf("no address is found with '%s'", input)
	}
	return matches[0], nil
}

// ReverseLookup lists every (network, role) an address is registered under.
// Casing of the input does not matter.
func ReverseLookup(r *addresses.Registry, address string) []AddressDesc {
	result := []AddressDesc{}
	for _, ad := range NewFuzzySource(r) {
		if strings.EqualFold(ad.Address, address) {
			result = append(result, ad)
		}
	}
	return result
}
