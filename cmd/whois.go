package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/ui"
	"github.com/tranvictor/addressbook/util/addrbook"
)

var whoisCmd = &cobra.Command{
	Use:   "whois <text...>",
	Short: "Show the roles of every address found in the params",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWhois(appUI, addrbook.NewDefault(addresses.Default(), 0), strings.Join(args, " "))
	},
}

var addressPattern = regexp.MustCompile("0x[0-9a-fA-F]{40}([^0-9a-fA-F]|$)")

// scanForAddresses returns the addresses embedded in para, e.g. pasted from
// an explorer page.
func scanForAddresses(para string) []string {
	result := addressPattern.FindAllString(para, -1)
	for i := range result {
		result[i] = result[i][0:42]
	}
	return result
}

func runWhois(u ui.UI, r addrbook.AddressResolver, para string) error {
	addrs := scanForAddresses(para)
	if len(addrs) == 0 {
		return fmt.Errorf("couldn't find any addresses in the params")
	}
	for _, addr := range addrs {
		label := r.Resolve(addr)
		if !label.Known() {
			u.Warn("%s: not found", addr)
			continue
		}
		u.Info("%s: %s", addr, label.Desc)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}
