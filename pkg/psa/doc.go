// Package psa translates the status codes of a native PSA Cryptography API
// implementation into Go errors and gates use of the library behind an
// explicit, idempotent initialization.
//
// # Errors and statuses
//
// Every failure is an Error, a closed set of kinds comparable with errors.Is:
//
//	if errors.Is(err, psa.ErrInsufficientEntropy) {
//	    // provision entropy and retry
//	}
//
// A Status is the typed form of a native psa_status_t: Success or one Error.
// Status.ToResult turns it into the usual Go error return.
//
// # Contracts
//
// The numeric codes belong to the native library. A Contract maps them for one
// ABI version; Decode and Encode use the default contract (see
// SetDefaultContract). Both directions are total: an unknown code or a kind the
// contract cannot represent becomes GenericError and is reported to the logger
// installed with SetLogger, never to the caller as a panic.
//
// # Initialization
//
//	if err := psa.Init(); err != nil {
//	    return err
//	}
//	...
//	if err := psa.Initialized(); err != nil {
//	    return err // ErrBadState
//	}
//
// The native library is linked only in builds with the psa_native tag. Other
// builds compile and test normally, and Init reports ErrNotSupported.
package psa
