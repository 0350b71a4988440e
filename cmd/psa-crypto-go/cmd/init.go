package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the native library and report the result",
		Long: `Calls psa_crypto_init through the wrapper and reports the decoded status.
Without the native library (builds without -tags psa_native) this always
fails with NotSupported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if err := psa.Init(); err != nil {
				fmt.Fprintf(out, "init:        %s\n", psa.FromResult(err))
				return fmt.Errorf("init: %w", err)
			}
			fmt.Fprintf(out, "init:        %s\n", psa.Success)

			if err := psa.Initialized(); err != nil {
				return fmt.Errorf("initialized: %w", err)
			}
			fmt.Fprintln(out, "initialized: yes")
			return nil
		},
	}
}
