package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/ui"
)

var ExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [network]",
	Short: "Dump the address tables as json or yaml",
	Long: `Each network is written as {name, chainId, addresses}. A plain role maps to
its address, a typed one to {value, type}. Without a network every table is
written, as a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network := ""
		if len(args) > 0 {
			network = args[0]
		}
		return runExport(appUI, addresses.Default(), ExportFormat, network)
	},
}

func runExport(u ui.UI, reg *addresses.Registry, format, network string) error {
	var doc any = reg.Documents()
	if network != "" {
		s, err := reg.Network(network)
		if err != nil {
			return err
		}
		doc = addresses.DocumentOf(s)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(u.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(u.Writer())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format '%s', use json or yaml", format)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&ExportFormat, "format", "f", "json", "json or yaml")
	rootCmd.AddCommand(exportCmd)
}
