// Package cmd implements the psa-crypto-go command line: a diagnostic tool
// for the status translation tables and the native initialization.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psacrypto/psa-crypto-go/pkg/psa"
)

type rootOptions struct {
	configFile string
	contract   string
	logBackend string
	logLevel   string
	logFormat  string

	// selected is the contract version chosen by --contract or the config
	// file, empty when neither named one.
	selected string
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree so tests can run commands with their own flags.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "psa-crypto-go",
		Short: "Inspect PSA Crypto status codes and library initialization",
		Long: `psa-crypto-go translates PSA Crypto status codes between their native
integer form and the typed errors of the Go wrapper, and checks that the
native library initializes.

Contracts:
  1.0-beta3 - default, no codes for DataCorrupt, DataInvalid, CorruptionDetected
  1.0       - every error kind`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if err := cfg.Apply(cmd.ErrOrStderr()); err != nil {
				return err
			}
			opts.selected = cfg.ContractVersion
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.contract, "contract", "", "contract version (default "+psa.ContractVersionBeta3+")")
	flags.StringVar(&opts.logBackend, "log-backend", "", "diagnostic log backend: slog or zap")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error or off")
	flags.StringVar(&opts.logFormat, "log-format", "", "diagnostic log format: text or json")

	root.AddCommand(
		newVersionCommand(),
		newInitCommand(),
		newDecodeCommand(),
		newEncodeCommand(),
		newContractsCommand(opts),
	)
	return root
}

// config merges the config file, if any, with flags. Flags win.
func (o *rootOptions) config() (psa.Config, error) {
	var cfg psa.Config
	if o.configFile != "" {
		loaded, err := psa.LoadConfig(o.configFile)
		if err != nil {
			return psa.Config{}, err
		}
		cfg = loaded
	}

	if o.contract != "" {
		cfg.ContractVersion = o.contract
	}
	if o.logBackend != "" {
		cfg.Logging.Backend = o.logBackend
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	return cfg, nil
}
