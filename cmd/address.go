package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/db"
	"github.com/tranvictor/addressbook/ui"
)

var addressCmd = &cobra.Command{
	Use:     "addr <query...>",
	Aliases: []string{"address"},
	Short:   "Find at max 10 matching addresses",
	Long: `The query is fuzzy matched against "<network>_<ROLE>_<address>" of every
entry, so "eth gho" and "op proxy admin" both work.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddr(appUI, addresses.Default(), strings.Join(args, " "))
	},
}

func runAddr(u ui.UI, reg *addresses.Registry, query string) error {
	addrs, scores := db.GetAddresses(reg, query)
	if len(addrs) == 0 {
		return fmt.Errorf("no address is found with '%s'", query)
	}
	rows := make([][]string, 0, len(addrs))
	for i, ad := range addrs {
		rows = append(rows, []string{fmt.Sprintf("%d", scores[i]), ad.Address, ad.Desc()})
	}
	u.Table([]string{"SCORE", "ADDRESS", "DESCRIPTION"}, rows)
	return nil
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
