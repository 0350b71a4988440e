// Package bindings hosts the thin cgo layer that links the Go API to the
// native PSA Crypto implementation (Mbed TLS libmbedcrypto). The real
// implementation lives behind the psa_native build tag so that the rest of
// the repository can compile and test without cgo or the native library.
//
// Build with the native library:
//
//	go build -tags psa_native ./...
//
// Functions here return raw psa_status_t values. Translating them into Go
// errors is the job of package psa.
package bindings
