package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

func newContractsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contracts [VERSION]",
		Short: "List contracts or show the code table of one",
		Long: `Without arguments, lists the built-in contracts. With a VERSION argument, or
when --contract or the config file selects a contract, prints that contract's
kind/code table. Kinds without a code are shown as "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			version := opts.selected
			if len(args) == 1 {
				version = args[0]
			}

			if version == "" {
				current := psa.DefaultContract().Version()
				for _, c := range psa.Contracts() {
					marker := ""
					if c.Version() == current {
						marker = "(default)"
					}
					fmt.Fprintf(w, "%s\t%d unrepresentable\t%s\n", c.Version(), len(c.Unrepresentable()), marker)
				}
				return w.Flush()
			}

			c, err := psa.LookupContract(version)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Success\t%d\n", c.SuccessCode())
			for _, e := range psa.Errors() {
				if code, ok := c.Code(e); ok {
					fmt.Fprintf(w, "%s\t%d\n", e.Name(), code)
				} else {
					fmt.Fprintf(w, "%s\t-\n", e.Name())
				}
			}
			return w.Flush()
		},
	}
}
