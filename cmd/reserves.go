package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/common"
	"github.com/tranvictor/addressbook/db"
	"github.com/tranvictor/addressbook/log"
	"github.com/tranvictor/addressbook/marketdata"
	"github.com/tranvictor/addressbook/networks"
	"github.com/tranvictor/addressbook/ui"
	"github.com/tranvictor/addressbook/util/addrbook"
	"github.com/tranvictor/addressbook/util/reader"
)

var (
	ReservesProvider     string
	ReservesPoolProvider string
	ReservesJSON         bool
)

var reservesCmd = &cobra.Command{
	Use:   "reserves",
	Short: "Fetch the reserves of the Aave V3 market on the selected network",
	Long: `Reads getReservesData from the UiPoolDataProvider and prints every reserve with
its LTV, rates, available liquidity and price. The UI_POOL_DATA_PROVIDER and
POOL_ADDRESSES_PROVIDER entries of the selected network are used unless
--provider / --pool-provider are given. Both flags take an address or an
addressbook query such as "optimism pool addresses provider".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := reader.NewEthReaderWithCustomNodes(cfg.Nodes(networks.CurrentNetwork()))
		if err != nil {
			return err
		}
		defer r.Close()
		return runReserves(cmd.Context(), appUI, addresses.Default(), networks.CurrentNetwork(), r)
	},
}

// resolveAddress prefers the flag value, an address or a registry query, and
// falls back to role on s.
func resolveAddress(reg *addresses.Registry, flag string, s addresses.Set, role addresses.Role) (gethcommon.Address, error) {
	if flag != "" {
		if strings.HasPrefix(flag, "0x") {
			a, err := common.ParseAddress(flag)
			if err != nil {
				return gethcommon.Address{}, err
			}
			return a.Common(), nil
		}
		ad, err := db.GetAddress(reg, flag)
		if err != nil {
			return gethcommon.Address{}, err
		}
		log.Debugw("resolved address query", "query", flag, "match", ad.Desc(), "address", ad.Address)
		return gethcommon.HexToAddress(ad.Address), nil
	}
	if s == nil {
		return gethcommon.Address{}, fmt.Errorf("no address table for this network, pass the %s address", role)
	}
	e, err := s.Get(role)
	if err != nil {
		return gethcommon.Address{}, err
	}
	return e.Value.Common(), nil
}

func runReserves(ctx context.Context, u ui.UI, reg *addresses.Registry, n networks.Network, caller reader.ContractCaller) error {
	s, _ := reg.NetworkByChainID(n.GetChainID())
	uiProvider, err := resolveAddress(reg, ReservesProvider, s, addresses.UiPoolDataProvider)
	if err != nil {
		return err
	}
	poolProvider, err := resolveAddress(reg, ReservesPoolProvider, s, addresses.PoolAddressesProvider)
	if err != nil {
		return err
	}

	stop := u.Spinner(fmt.Sprintf("fetching reserves on %s", n.GetName()))
	market, err := marketdata.NewFetcher(caller, 0).FetchReserves(ctx, uiProvider, poolProvider)
	stop()
	if err != nil {
		log.Errorw(err, "fetching market data failed")
		return err
	}
	log.Infow("fetched market data",
		"network", n.GetName(),
		"provider", poolProvider.Hex(),
		"reserves", len(market.Reserves),
	)

	if ReservesJSON {
		enc := json.NewEncoder(u.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(market)
	}
	resolver := addrbook.NewDefault(reg, n.GetChainID())
	u.Table(
		[]string{"SYMBOL", "ASSET", "LTV", "SUPPLY APY", "BORROW APY", "AVAILABLE", "PRICE (USD)", "STATUS", "REGISTERED AS"},
		lo.Map(market.Reserves, func(r marketdata.Reserve, _ int) []string {
			registered := ""
			if label := resolver.Resolve(r.UnderlyingAsset.Hex()); label.Known() {
				registered = label.Desc
			}
			return []string{
				r.Symbol,
				r.UnderlyingAsset.Hex(),
				fmt.Sprintf("%.2f%%", r.LTV),
				fmt.Sprintf("%.2f%%", r.SupplyAPY),
				fmt.Sprintf("%.2f%%", r.VariableBorrowAPY),
				r.AvailableLiquidity,
				fmt.Sprintf("%.4f", r.PriceInUSD),
				r.Status(),
				registered,
			}
		}),
	)
	return nil
}

func init() {
	reservesCmd.Flags().StringVar(&ReservesProvider, "provider", "", "UiPoolDataProvider address")
	reservesCmd.Flags().StringVar(&ReservesPoolProvider, "pool-provider", "", "PoolAddressesProvider address")
	reservesCmd.Flags().BoolVar(&ReservesJSON, "json", false, "print the reserves as json")
	rootCmd.AddCommand(reservesCmd)
}
