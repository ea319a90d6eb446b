package common_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tranvictor/addressbook/common"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "checksummed", input: "0xD3cF979e676265e4f6379749DECe4708B9A22476"},
		{name: "lower case", input: "0x984b710d22730f799312513a10c1382e9d1fa689"},
		{name: "missing prefix", input: "D3cF979e676265e4f6379749DECe4708B9A22476", wantErr: true},
		{name: "too short", input: "0xD3cF979e676265e4f6379749DECe4708B9A2247", wantErr: true},
		{name: "too long", input: "0xD3cF979e676265e4f6379749DECe4708B9A224760", wantErr: true},
		{name: "non hex", input: "0xZ3cF979e676265e4f6379749DECe4708B9A22476", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "surrounding space", input: " 0xD3cF979e676265e4f6379749DECe4708B9A22476", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := common.ParseAddress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidAddress))
				assert.True(t, addr.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, addr.String())
			assert.False(t, addr.IsZero())
		})
	}
}

func TestMustAddressPanicsOnMalformedLiteral(t *testing.T) {
	assert.Panics(t, func() { common.MustAddress("0x1234") })
	assert.NotPanics(t, func() { common.MustAddress("0x9abf798f5314BFd793A9E57A654BEd35af4A1D60") })
}

func TestAddressKeepsLiteralButComparesBytes(t *testing.T) {
	lower := common.MustAddress("0xd3cf979e676265e4f6379749dece4708b9a22476")
	mixed := common.MustAddress("0xD3cF979e676265e4f6379749DECe4708B9A22476")

	assert.NotEqual(t, lower.String(), mixed.String())
	assert.True(t, lower.Equal(mixed))
	assert.Equal(t, lower.Common(), mixed.Common())
	assert.False(t, lower.Equal(common.Address{}))
}

func TestEntryJSONShape(t *testing.T) {
	plain := common.Entry{Value: common.MustAddress("0x25F2226B597E8F9514B3F68F00f494cF4f286491")}
	typed := common.Entry{
		Value: common.MustAddress("0x3d569673dAa0575c936c7c67c4E6AedA69CC630C"),
		Type:  "IAaveEcosystemReserveController",
	}

	out, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `"0x25F2226B597E8F9514B3F68F00f494cF4f286491"`, string(out))

	out, err = json.Marshal(typed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"0x3d569673dAa0575c936c7c67c4E6AedA69CC630C","type":"IAaveEcosystemReserveController"}`, string(out))

	var back common.Entry
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, typed, back)
}

func TestEntryUnmarshalRejectsBadInput(t *testing.T) {
	var e common.Entry
	assert.Error(t, json.Unmarshal([]byte(`"0x1234"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"value":"0x3d569673dAa0575c936c7c67c4E6AedA69CC630C"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
}

func TestEntryYAML(t *testing.T) {
	doc := map[string]common.Entry{
		"PROXY_ADMIN": {Value: common.MustAddress("0xD3cF979e676265e4f6379749DECe4708B9A22476")},
		"AAVE_ECOSYSTEM_RESERVE_CONTROLLER": {
			Value: common.MustAddress("0x3d569673dAa0575c936c7c67c4E6AedA69CC630C"),
			Type:  "IAaveEcosystemReserveController",
		},
	}
	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "0xD3cF979e676265e4f6379749DECe4708B9A22476", decoded["PROXY_ADMIN"])
	assert.Equal(t, map[string]interface{}{
		"value": "0x3d569673dAa0575c936c7c67c4E6AedA69CC630C",
		"type":  "IAaveEcosystemReserveController",
	}, decoded["AAVE_ECOSYSTEM_RESERVE_CONTROLLER"])
}

func TestBigToFloat(t *testing.T) {
	assert.InDelta(t, 1.1, common.BigToFloat(big.NewInt(1100), 3), 1e-12)
	assert.Equal(t, 11.0, common.BigToFloat(big.NewInt(1100), 2))
	assert.Equal(t, 0.0, common.BigToFloat(nil, 2))

	assert.Equal(t, "1.5", common.BigToFloatString(big.NewInt(1500000), 6))
	assert.Equal(t, "2", common.BigToFloatString(big.NewInt(2000000), 6))
	assert.Equal(t, "0.000001", common.BigToFloatString(big.NewInt(1), 6))
	assert.Equal(t, "42", common.BigToFloatString(big.NewInt(42), 0))
}
