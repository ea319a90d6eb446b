package marketdata

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	abcommon "github.com/tranvictor/addressbook/common"
)

const (
	secondsPerYear = 31536000
	rayDecimals    = 27
	usdDecimals    = 8
	// LTV, thresholds and bonuses are basis points
	percentDecimals = 2
)

// AggregatedReserveData is one element of UiPoolDataProviderV3.getReservesData,
// field for field. Field order matters: outputs are copied by position.
type AggregatedReserveData struct {
	UnderlyingAsset                common.Address
	Name                           string
	Symbol                         string
	Decimals                       *big.Int
	BaseLTVasCollateral            *big.Int
	ReserveLiquidationThreshold    *big.Int
	ReserveLiquidationBonus        *big.Int
	ReserveFactor                  *big.Int
	UsageAsCollateralEnabled       bool
	BorrowingEnabled               bool
	IsActive                       bool
	IsFrozen                       bool
	LiquidityIndex                 *big.Int
	VariableBorrowIndex            *big.Int
	LiquidityRate                  *big.Int
	VariableBorrowRate             *big.Int
	LastUpdateTimestamp            *big.Int
	ATokenAddress                  common.Address
	VariableDebtTokenAddress       common.Address
	InterestRateStrategyAddress    common.Address
	AvailableLiquidity             *big.Int
	TotalScaledVariableDebt        *big.Int
	PriceInMarketReferenceCurrency *big.Int
	PriceOracle                    common.Address
	VariableRateSlope1             *big.Int
	VariableRateSlope2             *big.Int
	BaseVariableBorrowRate         *big.Int
	OptimalUsageRatio              *big.Int
	IsPaused                       bool
	IsSiloedBorrowing              bool
	AccruedToTreasury              *big.Int
	Unbacked                       *big.Int
	IsolationModeTotalDebt         *big.Int
	FlashLoanEnabled               bool
	DebtCeiling                    *big.Int
	DebtCeilingDecimals            *big.Int
	BorrowCap                      *big.Int
	SupplyCap                      *big.Int
	BorrowableInIsolation          bool
	VirtualAccActive               bool
	VirtualUnderlyingBalance       *big.Int
}

// BaseCurrencyInfo is the second output of getReservesData.
type BaseCurrencyInfo struct {
	MarketReferenceCurrencyUnit       *big.Int
	MarketReferenceCurrencyPriceInUsd *big.Int
	NetworkBaseTokenPriceInUsd        *big.Int
	NetworkBaseTokenPriceDecimals     uint8
}

type BaseCurrency struct {
	MarketReferenceCurrencyDecimals   uint64  `json:"marketReferenceCurrencyDecimals"`
	MarketReferenceCurrencyPriceInUsd float64 `json:"marketReferenceCurrencyPriceInUsd"`
	NetworkBaseTokenPriceInUsd        float64 `json:"networkBaseTokenPriceInUsd"`
	NetworkBaseTokenPriceDecimals     uint8   `json:"networkBaseTokenPriceDecimals"`
}

// Reserve is a reserve in display units. Percentages are in percent
// (LTV 80 means 80%), rates are yearly and compounded per second, amounts are
// in whole tokens.
type Reserve struct {
	ID              string         `json:"id"`
	UnderlyingAsset common.Address `json:"underlyingAsset"`
	Name            string         `json:"name"`
	Symbol          string         `json:"symbol"`
	Decimals        uint64         `json:"decimals"`

	LTV                  float64 `json:"ltv"`
	LiquidationThreshold float64 `json:"liquidationThreshold"`
	LiquidationBonus     float64 `json:"liquidationBonus"`
	ReserveFactor        float64 `json:"reserveFactor"`

	SupplyAPY         float64 `json:"supplyAPY"`
	VariableBorrowAPY float64 `json:"variableBorrowAPY"`

	AvailableLiquidity string  `json:"availableLiquidity"`
	PriceInUSD         float64 `json:"priceInUSD"`
	SupplyCap          string  `json:"supplyCap"`
	BorrowCap          string  `json:"borrowCap"`

	UsageAsCollateralEnabled bool `json:"usageAsCollateralEnabled"`
	BorrowingEnabled         bool `json:"borrowingEnabled"`
	IsActive                 bool `json:"isActive"`
	IsFrozen                 bool `json:"isFrozen"`
	IsPaused                 bool `json:"isPaused"`

	ATokenAddress            common.Address `json:"aTokenAddress"`
	VariableDebtTokenAddress common.Address `json:"variableDebtTokenAddress"`
	PriceOracle              common.Address `json:"priceOracle"`
}

func (r Reserve) String() string {
	return fmt.Sprintf("%s (%s, %d decimals)", r.Symbol, r.UnderlyingAsset.Hex(), r.Decimals)
}

// Status is "active", "frozen", "paused" or "inactive".
func (r Reserve) Status() string {
	switch {
	case !r.IsActive:
		return "inactive"
	case r.IsPaused:
		return "paused"
	case r.IsFrozen:
		return "frozen"
	default:
		return "active"
	}
}

// Market is what FetchReserves returns: the reserves in pool order plus the
// currency their prices are quoted in.
type Market struct {
	Reserves     []Reserve    `json:"reservesData"`
	BaseCurrency BaseCurrency `json:"baseCurrencyData"`
}

func bpsToPercent(bps *big.Int) float64 {
	return abcommon.BigToFloat(bps, percentDecimals)
}

// the bonus is stored as 10000 + bonus, 0 when the asset is not collateral
func liquidationBonus(bps *big.Int) float64 {
	if bps == nil || bps.Cmp(big.NewInt(10000)) <= 0 {
		return 0
	}
	return bpsToPercent(new(big.Int).Sub(bps, big.NewInt(10000)))
}

// rayToAPY compounds a per year rate in ray every second, in percent.
func rayToAPY(rate *big.Int) float64 {
	apr := abcommon.BigToFloat(rate, rayDecimals)
	return (math.Pow(1+apr/secondsPerYear, secondsPerYear) - 1) * 100
}

func humanizeBaseCurrency(b BaseCurrencyInfo) BaseCurrency {
	return BaseCurrency{
		MarketReferenceCurrencyDecimals:   referenceDecimals(b.MarketReferenceCurrencyUnit),
		MarketReferenceCurrencyPriceInUsd: abcommon.BigToFloat(b.MarketReferenceCurrencyPriceInUsd, usdDecimals),
		NetworkBaseTokenPriceInUsd:        abcommon.BigToFloat(b.NetworkBaseTokenPriceInUsd, uint64(b.NetworkBaseTokenPriceDecimals)),
		NetworkBaseTokenPriceDecimals:     b.NetworkBaseTokenPriceDecimals,
	}
}

// referenceDecimals turns a unit such as 100000000 into 8.
func referenceDecimals(unit *big.Int) uint64 {
	if unit == nil || unit.Sign() <= 0 {
		return 0
	}
	return uint64(len(unit.String()) - 1)
}

func humanizeReserve(d AggregatedReserveData, base BaseCurrencyInfo, poolAddressesProvider common.Address) Reserve {
	decimals := d.Decimals.Uint64()

	// price * referencePriceInUsd carries usdDecimals + the reference decimals
	price := new(big.Int).Mul(d.PriceInMarketReferenceCurrency, base.MarketReferenceCurrencyPriceInUsd)
	priceDecimals := usdDecimals + referenceDecimals(base.MarketReferenceCurrencyUnit)

	return Reserve{
		ID:                       strings.ToLower(d.UnderlyingAsset.Hex() + poolAddressesProvider.Hex()),
		UnderlyingAsset:          d.UnderlyingAsset,
		Name:                     d.Name,
		Symbol:                   d.Symbol,
		Decimals:                 decimals,
		LTV:                      bpsToPercent(d.BaseLTVasCollateral),
		LiquidationThreshold:     bpsToPercent(d.ReserveLiquidationThreshold),
		LiquidationBonus:         liquidationBonus(d.ReserveLiquidationBonus),
		ReserveFactor:            bpsToPercent(d.ReserveFactor),
		SupplyAPY:                rayToAPY(d.LiquidityRate),
		VariableBorrowAPY:        rayToAPY(d.VariableBorrowRate),
		AvailableLiquidity:       abcommon.BigToFloatString(d.AvailableLiquidity, decimals),
		PriceInUSD:               abcommon.BigToFloat(price, priceDecimals),
		SupplyCap:                d.SupplyCap.String(),
		BorrowCap:                d.BorrowCap.String(),
		UsageAsCollateralEnabled: d.UsageAsCollateralEnabled,
		BorrowingEnabled:         d.BorrowingEnabled,
		IsActive:                 d.IsActive,
		IsFrozen:                 d.IsFrozen,
		IsPaused:                 d.IsPaused,
		ATokenAddress:            d.ATokenAddress,
		VariableDebtTokenAddress: d.VariableDebtTokenAddress,
		PriceOracle:              d.PriceOracle,
	}
}
