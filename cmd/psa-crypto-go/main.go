package main

import (
	"os"

	"github.com/psacrypto/psa-crypto-go/cmd/psa-crypto-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
