package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode CODE...",
		Short: "Decode native status codes",
		Long: `Decodes each native status code with the selected contract. Codes may be
decimal or 0x-prefixed hexadecimal. Unknown codes decode to GenericError and
are reported on the diagnostic log.`,
		Example: "  psa-crypto-go decode -- 0 -148 -152",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]int32, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 0, 32)
				if err != nil {
					return fmt.Errorf("decode %q: %v: %w", arg, err, psa.ErrInvalidArgument)
				}
				codes = append(codes, int32(v))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range codes {
				fmt.Fprintf(w, "%d\t%s\n", code, psa.Decode(code))
			}
			return w.Flush()
		},
	}
}
