package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode KIND...",
		Short: "Encode statuses to native codes",
		Long: `Encodes Success or an error kind (for example InsufficientEntropy) with the
selected contract. Kinds the contract cannot represent encode to the generic
error code and are reported on the diagnostic log.`,
		Example: "  psa-crypto-go encode Success BadState DataCorrupt",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := make([]psa.Status, 0, len(args))
			for _, arg := range args {
				s, err := parseStatus(arg)
				if err != nil {
					return err
				}
				statuses = append(statuses, s)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%d\n", s, psa.Encode(s))
			}
			return w.Flush()
		},
	}
}

func parseStatus(name string) (psa.Status, error) {
	if strings.EqualFold(strings.TrimSpace(name), "success") {
		return psa.Success, nil
	}
	e, ok := psa.ParseError(name)
	if !ok {
		return psa.Success, fmt.Errorf("encode %q: unknown kind: %w", name, psa.ErrInvalidArgument)
	}
	return psa.StatusError(e), nil
}
