package addresses_test

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/common"
)

var hexAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func TestEveryValueIsAHexAddress(t *testing.T) {
	for _, s := range addresses.Networks() {
		for role, e := range s.Entries() {
			assert.Regexp(t, hexAddress, e.Value.String(), "%s on %s", role, s.GetName())
		}
	}
}

func TestChainIDsAreDistinct(t *testing.T) {
	seen := map[uint64]string{}
	for _, s := range addresses.Networks() {
		prev, dup := seen[s.GetChainID()]
		assert.False(t, dup, "%s and %s share chain id %d", prev, s.GetName(), s.GetChainID())
		seen[s.GetChainID()] = s.GetName()
	}
	assert.Len(t, seen, 4)
}

func TestLookupReturnsDeclaredLiteral(t *testing.T) {
	tests := []struct {
		network string
		role    addresses.Role
		want    string
	}{
		{"Ethereum", addresses.ProxyAdmin, "0xD3cF979e676265e4f6379749DECe4708B9A22476"},
		{"Ethereum", addresses.SDaiPot, "0x197E90f9FAD81970bA7976f33CbD77088E5D7cf7"},
		{"Sepolia", addresses.GhoFlashminterFacilitator, "0xB5d0ef1548D9C70d3E7a96cA67A2d7EbC5b1173E"},
		{"Optimism", addresses.TransparentProxyFactory, "0x984b710d22730f799312513a10c1382e9d1fa689"},
		{"OptimismSepolia", addresses.GhoToken, "0xb13Cfa6f8B2Eed2C37fB00fF0c1A59807C585810"},
		// aliases from the networks catalog
		{"mainnet", addresses.ProtocolGuardian, "0x2CFe3ec4d5a6811f4B8067F0DE7e47DfA938Aa30"},
		{"op", addresses.LegacyBridgeExecutor, "0x7d9103572bE58FfE99dc390E8246f02dcAe6f611"},
		{"op-sepolia", addresses.ProxyAdmin, "0xe892E40C92c2E4D281Be59b2E6300F271d824E75"},
	}

	for _, tt := range tests {
		t.Run(tt.network+"/"+tt.role.String(), func(t *testing.T) {
			e, err := addresses.Lookup(tt.network, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Value.String())
			assert.False(t, e.IsInfo())
		})
	}
}

func TestTypedAccessMatchesLookup(t *testing.T) {
	eth := addresses.Ethereum()
	assert.Equal(t, "0xD3cF979e676265e4f6379749DECe4708B9A22476", eth.Addresses.ProxyAdmin.String())
	assert.Equal(t, "IAaveEcosystemReserveController", eth.Addresses.AaveEcosystemReserveController.Type)

	e, err := addresses.Lookup("Ethereum", addresses.AaveEcosystemReserveController)
	require.NoError(t, err)
	assert.True(t, e.IsInfo())
	assert.Equal(t, eth.Addresses.AaveEcosystemReserveController, e.Info())
}

func TestLookupUndeclaredRoleFails(t *testing.T) {
	tests := []struct {
		name    string
		network string
		role    addresses.Role
	}{
		{"extension of another network", "Sepolia", addresses.EcosystemReserve},
		{"base role left unset", "Optimism", addresses.GhoToken},
		{"role keys are case sensitive", "Ethereum", addresses.Role("SDAI_POT")},
		{"made up role", "Ethereum", addresses.Role("PROXY_ADMN")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := addresses.Lookup(tt.network, tt.role)
			require.Error(t, err)
			assert.True(t, errors.Is(err, addresses.ErrRoleNotFound))
			assert.Contains(t, err.Error(), string(tt.role))
			assert.Contains(t, err.Error(), tt.network)
			assert.Equal(t, common.Entry{}, e)
		})
	}
}

func TestLookupUnknownNetwork(t *testing.T) {
	_, err := addresses.Lookup("ropsten", addresses.ProxyAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrNetworkNotFound))

	// arbitrum is in the networks catalog but has no table
	_, err = addresses.Lookup("arbitrum", addresses.ProxyAdmin)
	assert.True(t, errors.Is(err, addresses.ErrNetworkNotFound))

	_, err = addresses.LookupByChainID(137, addresses.ProxyAdmin)
	assert.True(t, errors.Is(err, addresses.ErrNetworkNotFound))
}

func TestSameBaseRoleDifferentValuesPerNetwork(t *testing.T) {
	eth, err := addresses.LookupByChainID(1, addresses.ProxyAdmin)
	require.NoError(t, err)
	sepolia, err := addresses.LookupByChainID(11155111, addresses.ProxyAdmin)
	require.NoError(t, err)
	op, err := addresses.LookupByChainID(10, addresses.TransparentProxyFactory)
	require.NoError(t, err)
	ethFactory, err := addresses.LookupByChainID(1, addresses.TransparentProxyFactory)
	require.NoError(t, err)

	assert.Equal(t, "0xD3cF979e676265e4f6379749DECe4708B9A22476", eth.Value.String())
	assert.Equal(t, "0x8dDa7a1E3e96EB13BE50bB59e80485227E3DE2e7", sepolia.Value.String())
	assert.False(t, eth.Value.Equal(sepolia.Value))
	assert.False(t, op.Value.Equal(ethFactory.Value))
}

func TestAccessorsReturnCopies(t *testing.T) {
	eth := addresses.Ethereum()
	eth.Addresses.ProxyAdmin = common.MustAddress("0x0000000000000000000000000000000000000001")
	entries := eth.Entries()
	delete(entries, addresses.ProxyAdmin)

	again := addresses.Ethereum()
	assert.Equal(t, "0xD3cF979e676265e4f6379749DECe4708B9A22476", again.Addresses.ProxyAdmin.String())
	_, err := again.Get(addresses.ProxyAdmin)
	assert.NoError(t, err)
	assert.Equal(t, addresses.Ethereum(), addresses.Ethereum())
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	other := addresses.MustDefine("Other", 1, addresses.Base{
		ProxyAdmin: common.MustAddress("0x0000000000000000000000000000000000000002"),
	})
	_, err := addresses.NewRegistry(addresses.Ethereum(), other)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrDuplicateChainID))

	clash := addresses.MustDefine("ETHEREUM", 999999, addresses.Base{})
	_, err = addresses.NewRegistry(addresses.Ethereum(), clash)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrDuplicateName))
}

func TestNewRegistryRejectsTablesBuiltWithoutDefine(t *testing.T) {
	anvil := common.MustAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	literal := addresses.NetworkAddresses[addresses.Base]{
		Name:      "Anvil",
		ChainID:   31337,
		Addresses: addresses.Base{ProxyAdmin: anvil},
	}
	_, err := addresses.NewRegistry(literal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrUndefinedNetwork))

	_, err = addresses.NewRegistry(addresses.NetworkAddresses[addresses.Base]{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrUndefinedNetwork))

	edited := addresses.Ethereum()
	edited.Addresses.ProxyAdmin = anvil
	_, err = addresses.NewRegistry(edited)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrInvalidSchema))

	renamed := addresses.Sepolia()
	renamed.ChainID = 0
	_, err = addresses.NewRegistry(renamed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, addresses.ErrInvalidSchema))

	_, err = addresses.NewRegistry(addresses.Ethereum(), addresses.Sepolia())
	assert.NoError(t, err)
}

func TestCustomRegistry(t *testing.T) {
	local := addresses.MustDefine("Anvil", 31337, addresses.Base{
		ProxyAdmin: common.MustAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	})
	r, err := addresses.NewRegistry(local)
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	e, err := r.Lookup("anvil", addresses.ProxyAdmin)
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", e.Value.String())
	assert.Equal(t, []addresses.Role{addresses.ProxyAdmin}, local.Roles())
}

func TestDefaultRegistryValidates(t *testing.T) {
	assert.NoError(t, addresses.Default().Validate())
}

func TestRolesSorted(t *testing.T) {
	roles := addresses.OptimismSepolia().Roles()
	assert.Equal(t, []addresses.Role{
		addresses.GhoToken,
		addresses.ProxyAdmin,
		addresses.TransparentProxyFactory,
	}, roles)
}

func TestNetworkAddressesJSON(t *testing.T) {
	out, err := json.Marshal(addresses.Sepolia())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Sepolia",
		"chainId": 11155111,
		"addresses": {
			"TRANSPARENT_PROXY_FACTORY": "0x84B08568906ee891de1c23175E5B92d7Df7DDCc4",
			"PROXY_ADMIN": "0x8dDa7a1E3e96EB13BE50bB59e80485227E3DE2e7",
			"GHO_TOKEN": "0xc4bF5CbDaBE595361438F8c6a187bDc330539c60",
			"GHO_FLASHMINTER_FACILITATOR": "0xB5d0ef1548D9C70d3E7a96cA67A2d7EbC5b1173E"
		}
	}`, string(out))

	var doc addresses.Document
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, addresses.DocumentOf(addresses.Sepolia()), doc)
}

func TestRegistryEntriesAndRoles(t *testing.T) {
	roles, err := addresses.Default().Roles("op-sepolia")
	require.NoError(t, err)
	assert.Equal(t, addresses.OptimismSepolia().Roles(), roles)

	entries, err := addresses.Default().Entries("OptimismSepolia")
	require.NoError(t, err)
	assert.Len(t, entries, len(roles))

	_, err = addresses.Default().Entries("polygon")
	assert.True(t, errors.Is(err, addresses.ErrNetworkNotFound))
}
