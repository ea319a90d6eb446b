package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/ui"
)

var getCmd = &cobra.Command{
	Use:   "get <network> <ROLE>",
	Short: "Show the address registered for a role on a network",
	Long: `Network is the table name (Ethereum, OptimismSepolia...) or any name of the
network (mainnet, eth, op, op-sepolia...), in any case. Roles are case sensitive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(appUI, addresses.Default(), args[0], addresses.Role(args[1]))
	},
}

func runGet(u ui.UI, reg *addresses.Registry, network string, role addresses.Role) error {
	s, err := reg.Network(network)
	if err != nil {
		return err
	}
	entry, err := s.Get(role)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"Network", s.GetName()},
		{"Chain ID", fmt.Sprintf("%d", s.GetChainID())},
		{"Role", role.String()},
		{"Address", u.Style(ui.StyledText{Text: entry.Value.String(), Severity: ui.SeveritySuccess})},
	}
	if entry.IsInfo() {
		rows = append(rows, [2]string{"Type", entry.Type})
	}
	u.KeyValue(rows)
	return nil
}

func init() {
	rootCmd.AddCommand(getCmd)
}
