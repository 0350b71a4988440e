//go:build !cgo || !psa_native

package bindings

import "testing"

func TestStubReportsNotSupported(t *testing.T) {
	if got := CryptoInit(); got != StatusNotSupported {
		t.Fatalf("CryptoInit() = %d, want %d", got, StatusNotSupported)
	}
	if Built() {
		t.Fatalf("Built() = true in a stub build")
	}
	if v := Version(); v != "" {
		t.Fatalf("Version() = %q, want empty", v)
	}
}
