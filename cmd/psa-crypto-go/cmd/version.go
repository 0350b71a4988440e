package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show wrapper and native library versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			native := "not linked (build with -tags psa_native)"
			if psa.Native() {
				native = "linked"
			}

			fmt.Fprintf(out, "psa-crypto-go %s\n", psa.WrapperVersion())
			fmt.Fprintf(out, "  Upstream:   %s (%s)\n", psa.UpstreamVersion(), psa.UpstreamDir)
			fmt.Fprintf(out, "  Native:     %s\n", native)
			fmt.Fprintf(out, "  Contract:   %s\n", psa.DefaultContract().Version())
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
