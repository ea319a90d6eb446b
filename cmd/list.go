package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [network]",
	Short: "List every role and address of a network, or of all networks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network := ""
		if len(args) > 0 {
			network = args[0]
		}
		return runList(appUI, addresses.Default(), network)
	},
}

func entryRows(s addresses.Set) [][]string {
	entries := s.Entries()
	rows := [][]string{}
	for _, role := range s.Roles() {
		e := entries[role]
		rows = append(rows, []string{s.GetName(), role.String(), e.Value.String(), e.Type})
	}
	return rows
}

func runList(u ui.UI, reg *addresses.Registry, network string) error {
	headers := []string{"NETWORK", "ROLE", "ADDRESS", "TYPE"}
	if network != "" {
		s, err := reg.Network(network)
		if err != nil {
			return err
		}
		u.Table(headers, entryRows(s))
		return nil
	}

	groups := [][][]string{}
	for _, s := range reg.Networks() {
		groups = append(groups, entryRows(s))
	}
	u.TableWithGroups(headers, groups)
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
