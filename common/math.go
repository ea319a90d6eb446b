package common

import (
	"math/big"
	"strings"
)

func pow10(decimal uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(decimal), nil)
}

// BigToFloat converts a big int to float according to its number of decimal digits
// Example:
// - BigToFloat(1100, 3) = 1.1
// - BigToFloat(1100, 2) = 11
// - BigToFloat(1100, 5) = 0.11
func BigToFloat(b *big.Int, decimal uint64) float64 {
	if b == nil {
		return 0
	}
	f := new(big.Float).SetInt(b)
	res := new(big.Float).Quo(f, new(big.Float).SetInt(pow10(decimal)))
	result, _ := res.Float64()
	return result
}

// BigToFloatString is BigToFloat without the float64 rounding, for token
// amounts. Trailing zeros are dropped: BigToFloatString(1500000, 6) = "1.5".
func BigToFloatString(value *big.Int, decimal uint64) string {
	if value == nil {
		return "0"
	}
	if decimal == 0 {
		return value.String()
	}
	res := new(big.Rat).SetFrac(value, pow10(decimal))
	s := strings.TrimRight(res.FloatString(int(decimal)), "0")
	return strings.TrimSuffix(s, ".")
}
