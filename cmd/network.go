package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/config"
	"github.com/tranvictor/addressbook/networks"
	"github.com/tranvictor/addressbook/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNetworkList(appUI, addresses.Default(), cfg)
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the networks addressbook knows",
}

func runNetworkList(u ui.UI, reg *addresses.Registry, c *config.Config) error {
	current := networks.CurrentNetwork()
	for i, n := range networks.GetSupportedNetworks() {
		table := "-"
		if s, err := reg.NetworkByChainID(n.GetChainID()); err == nil {
			table = fmt.Sprintf("%s (%d roles)", s.GetName(), len(s.Roles()))
		}
		title := fmt.Sprintf("%d. %s", i+1, n.GetName())
		if n.GetChainID() == current.GetChainID() {
			title += " (selected)"
		}
		u.Section(title)
		u.KeyValue([][2]string{
			{"Chain ID", fmt.Sprintf("%d", n.GetChainID())},
			{"Aliases", strings.Join(n.GetAlternativeNames(), ", ")},
			{"Native token", n.GetNativeTokenSymbol()},
			{"Addresses", table},
			{"Node env var", n.GetNodeVariableName()},
		})

		nodes := c.Nodes(n)
		u.Info("RPC nodes:")
		child := u.Indent()
		for _, name := range config.NodeOrder(nodes) {
			child.Info("- %s: %s", name, nodes[name])
		}
	}
	return nil
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
