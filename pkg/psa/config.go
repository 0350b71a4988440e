package psa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/psacrypto/psa-crypto-go/pkg/psa/logging"
)

// Config expresses the process-wide knobs of the wrapper: which native ABI
// version to translate status codes with and where diagnostics go.
type Config struct {
	// ContractVersion selects a built-in contract. Leaving it empty keeps
	// ContractVersionBeta3.
	ContractVersion string `toml:"contract_version" yaml:"contract_version"`

	// Logging configures the diagnostic sink.
	Logging logging.Options `toml:"logging" yaml:"logging"`
}

// LoadConfig reads a Config from a TOML or YAML file, chosen by extension
// (.toml, .yaml, .yml). Environment variables in path are expanded. Unknown
// keys are rejected with ErrInvalidArgument.
func LoadConfig(path string) (Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("psa: read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("psa: parse TOML config %s: %v: %w", path, err, ErrInvalidArgument)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("psa: TOML config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidArgument)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("psa: parse YAML config %s: %v: %w", path, err, ErrInvalidArgument)
		}
	default:
		return Config{}, fmt.Errorf("psa: unsupported config format %q: %w", ext, ErrNotSupported)
	}

	return cfg, nil
}

// Apply installs the configured contract and diagnostic logger process-wide.
// Diagnostics are written to w, or os.Stderr when w is nil. Nothing is
// installed when the configuration is invalid.
func (c Config) Apply(w io.Writer) error {
	contract := contractBeta3
	if c.ContractVersion != "" {
		var err error
		if contract, err = LookupContract(c.ContractVersion); err != nil {
			return err
		}
	}

	logger, err := logging.Build(c.Logging, w)
	if err != nil {
		return fmt.Errorf("psa: %v: %w", err, ErrInvalidArgument)
	}

	SetDefaultContract(contract)
	SetLogger(logger)
	return nil
}
