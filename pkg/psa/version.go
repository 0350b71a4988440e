package psa

import "github.com/psacrypto/psa-crypto-go/internal/bindings"

var (
	Version     = "v0.0.0-in-progress"
	UpstreamSHA = "unknown"
	UpstreamDir = "mbedtls"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version string reported by the native library if
// it is linked; otherwise it falls back to the pinned upstream commit SHA.
func UpstreamVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return UpstreamSHA
}

// Native reports whether the binary links the native library. Without it Init
// always fails with ErrNotSupported.
func Native() bool {
	return bindings.Built()
}
