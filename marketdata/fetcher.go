// Package marketdata reads the reserves of an Aave V3 market through its
// UiPoolDataProvider.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	abcommon "github.com/tranvictor/addressbook/common"
	"github.com/tranvictor/addressbook/log"
	"github.com/tranvictor/addressbook/util/reader"
)

const DefaultTimeout = 10 * time.Second

type Fetcher struct {
	caller  reader.ContractCaller
	timeout time.Duration

	uiPoolDataProvider *abi.ABI
}

// NewFetcher reads through caller. Every contract call gets its own timeout;
// a zero timeout means DefaultTimeout.
func NewFetcher(caller reader.ContractCaller, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		caller:             caller,
		timeout:            timeout,
		uiPoolDataProvider: abcommon.GetUiPoolDataProviderABI(),
	}
}

func (f *Fetcher) call(ctx context.Context, contract common.Address, a *abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	return reader.ReadContract(ctx, f.caller, contract, a, method, args...)
}

// ReservesData is the raw getReservesData result for the market registered
// in poolAddressesProvider.
func (f *Fetcher) ReservesData(ctx context.Context, uiPoolDataProvider, poolAddressesProvider common.Address) ([]AggregatedReserveData, BaseCurrencyInfo, error) {
	out, err := f.call(ctx, uiPoolDataProvider, f.uiPoolDataProvider, "getReservesData", poolAddressesProvider)
	if err != nil {
		return nil, BaseCurrencyInfo{}, fmt.Errorf("reserves data: %w", err)
	}
	if len(out) != 2 {
		return nil, BaseCurrencyInfo{}, fmt.Errorf("reserves data: expected 2 outputs, got %d", len(out))
	}
	reserves := *abi.ConvertType(out[0], new([]AggregatedReserveData)).(*[]AggregatedReserveData)
	base := *abi.ConvertType(out[1], new(BaseCurrencyInfo)).(*BaseCurrencyInfo)
	return reserves, base, nil
}

// FetchReserves returns the reserves of the market registered in
// poolAddressesProvider in display units, in the order the pool lists them.
// It is a single eth_call, so a failure is returned as is.
func (f *Fetcher) FetchReserves(ctx context.Context, uiPoolDataProvider, poolAddressesProvider common.Address) (Market, error) {
	data, base, err := f.ReservesData(ctx, uiPoolDataProvider, poolAddressesProvider)
	if err != nil {
		return Market{}, err
	}
	log.Debugw("fetched reserves data", "provider", poolAddressesProvider.Hex(), "reserves", len(data))

	market := Market{
		Reserves:     make([]Reserve, 0, len(data)),
		BaseCurrency: humanizeBaseCurrency(base),
	}
	for _, d := range data {
		market.Reserves = append(market.Reserves, humanizeReserve(d, base, poolAddressesProvider))
	}
	return market, nil
}
