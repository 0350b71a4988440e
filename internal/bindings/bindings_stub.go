//go:build !cgo || !psa_native

package bindings

// Stub implementations for builds without cgo or without the psa_native tag.
// These allow the module to compile and test without libmbedcrypto.

// CryptoInit reports StatusNotSupported.
func CryptoInit() int32 { return StatusNotSupported }

// Version returns an empty string; no native library is linked.
func Version() string { return "" }

// Built reports whether libmbedcrypto was linked into the binary.
func Built() bool { return false }
