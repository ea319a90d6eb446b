// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/config"
	"github.com/tranvictor/addressbook/log"
	"github.com/tranvictor/addressbook/networks"
	"github.com/tranvictor/addressbook/ui"
)

var (
	appUI ui.UI = ui.NewTerminalUI()
	// set by the root command before any subcommand runs
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Look up Aave contract addresses by network and role",
	Long: fmt.Sprintf(`addressbook keeps the addresses of the Aave governance and periphery
contracts for every network it knows, keyed by role (PROXY_ADMIN, GHO_TOKEN...).

	addressbook get ethereum PROXY_ADMIN
	addressbook list optimism
	addressbook addr gho token
	addressbook whois 0xD3cF979e676265e4f6379749DECe4708B9A22476

Commands that talk to a chain (reserves, validate --onchain) use public nodes
by default. You can add your own node by setting the following env vars:
%s
FORK_RPC_URL, when set, points every network at a local fork and takes
precedence over all other nodes. RPC urls can also come from the "rpc" table
of addressbook.yaml or from [rpc_endpoints] in foundry.toml.`,
		nodeVarsHelp(),
	),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func nodeVarsHelp() string {
	var b strings.Builder
	for i, n := range networks.GetSupportedNetworks() {
		fmt.Fprintf(&b, "\t%d. For %s: %s\n", i+1, n.GetName(), n.GetNodeVariableName())
	}
	return b.String()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := log.Init(c.LogLevel, "stderr"); err != nil {
		return err
	}
	if err := networks.SetNetwork(c.Network); err != nil {
		return err
	}
	cfg = c
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet", fmt.Sprintf("network to use. Valid values: %s.", strings.Join(networks.GetSupportedNetworkNames(), ", ")))
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", log.LogLevelError, "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&config.ConfigFile, "config", "", "config file (default is ./addressbook.yaml or $HOME/.addressbook/addressbook.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.FoundryRoot, "foundry-root", ".", "directory holding foundry.toml and .env")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}
