package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addressbook/addresses"
	"github.com/tranvictor/addressbook/networks"
	"github.com/tranvictor/addressbook/ui"
	"github.com/tranvictor/addressbook/util/reader"
)

var ValidateOnchain bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the address tables",
	Long: `Re-checks that chain ids are distinct and every address is well formed.
With --onchain, also checks that every address of the selected network (-k)
has code deployed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var caller reader.ContractCaller
		if ValidateOnchain {
			r, err := reader.NewEthReaderWithCustomNodes(cfg.Nodes(networks.CurrentNetwork()))
			if err != nil {
				return err
			}
			defer r.Close()
			caller = r
		}
		return runValidate(cmd.Context(), appUI, addresses.Default(), networks.CurrentNetwork(), caller)
	},
}

// runValidate checks reg, and when caller is not nil, the code of every
// address registered for n.
func runValidate(ctx context.Context, u ui.UI, reg *addresses.Registry, n networks.Network, caller reader.ContractCaller) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	total := 0
	for _, s := range reg.Networks() {
		total += len(s.Roles())
	}
	u.Success("%d networks, %d addresses: ok", len(reg.Networks()), total)

	if caller == nil {
		return nil
	}

	s, err := reg.NetworkByChainID(n.GetChainID())
	if err != nil {
		return err
	}
	stop := u.Spinner(fmt.Sprintf("checking code of %d addresses on %s", len(s.Roles()), s.GetName()))
	entries := s.Entries()
	missing := []addresses.Role{}
	for _, role := range s.Roles() {
		code, err := caller.CodeAt(ctx, entries[role].Value.Common(), nil)
		if err != nil {
			stop()
			return fmt.Errorf("reading code of %s: %w", role, err)
		}
		if len(code) == 0 {
			missing = append(missing, role)
		}
	}
	stop()

	for _, role := range missing {
		u.Warn("%s %s: no code at %s", s.GetName(), role, entries[role].Value)
	}
	if len(missing) == 0 {
		u.Success("every address on %s has code", s.GetName())
	}
	return nil
}

func init() {
	validateCmd.Flags().BoolVar(&ValidateOnchain, "onchain", false, "also check deployed code on the selected network")
	rootCmd.AddCommand(validateCmd)
}
