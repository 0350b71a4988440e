//go:build cgo && psa_native

package bindings

/*
#cgo LDFLAGS: -lmbedcrypto
#include <stdlib.h>
#include <psa/crypto.h>
#include <mbedtls/version.h>
*/
import "C"

import "unsafe"

// CryptoInit calls psa_crypto_init. The native routine is safe to call more
// than once; every call reaches the library.
func CryptoInit() int32 {
	return int32(C.psa_crypto_init())
}

// Version returns the Mbed TLS version string of the linked library.
func Version() string {
	// mbedtls_version_get_string writes at most 9 bytes including the NUL.
	buf := (*C.char)(C.calloc(16, 1))
	defer C.free(unsafe.Pointer(buf))

	C.mbedtls_version_get_string(buf)
	return C.GoString(buf)
}

// Built reports whether libmbedcrypto was linked into the binary.
func Built() bool { return true }
