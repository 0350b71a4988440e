package psa

import "strings"

// Error is a PSA error kind. The set is closed: every failure produced by this
// package, and by operations layered on it, is one of the constants below.
// Error values are comparable and usable with errors.Is.
//
// Adding a kind is a breaking change for callers that switch over Error
// exhaustively.
type Error uint8

// The zero Error is not a kind; StatusError maps it to ErrGeneric.
const (
	// ErrGeneric is an error that does not correspond to any defined failure cause.
	ErrGeneric Error = iota + 1
	// ErrNotSupported means the operation or a parameter is not supported by the implementation.
	ErrNotSupported
	// ErrNotPermitted means the requested action is denied by a policy.
	ErrNotPermitted
	// ErrBufferTooSmall means an output buffer is too small.
	ErrBufferTooSmall
	// ErrAlreadyExists means the item being created already exists.
	ErrAlreadyExists
	// ErrDoesNotExist means the requested item does not exist.
	ErrDoesNotExist
	// ErrBadState means the action cannot be performed in the current state.
	ErrBadState
	// ErrInvalidArgument means the parameters passed to the function are invalid.
	ErrInvalidArgument
	// ErrInsufficientMemory means there is not enough runtime memory.
	ErrInsufficientMemory
	// ErrInsufficientStorage means there is not enough persistent storage.
	ErrInsufficientStorage
	// ErrCommunicationFailure is a communication failure inside the implementation.
	ErrCommunicationFailure
	// ErrStorageFailure is a storage failure that may have led to data loss.
	ErrStorageFailure
	// ErrDataCorrupt means stored data has been corrupted.
	ErrDataCorrupt
	// ErrDataInvalid means data read from storage is not valid for the implementation.
	ErrDataInvalid
	// ErrHardwareFailure means a hardware failure was detected.
	ErrHardwareFailure
	// ErrCorruptionDetected means a tampering attempt was detected.
	ErrCorruptionDetected
	// ErrInsufficientEntropy means there is not enough entropy to generate the
	// random data needed for the action.
	ErrInsufficientEntropy
	// ErrInvalidSignature means the signature, MAC or hash is incorrect.
	ErrInvalidSignature
	// ErrInvalidPadding means the decrypted padding is incorrect.
	ErrInvalidPadding
	// ErrInsufficientData means a resource ran out of data during a read.
	ErrInsufficientData
	// ErrInvalidHandle means the key handle is not valid.
	ErrInvalidHandle

	lastError = ErrInvalidHandle
)

type errorInfo struct {
	name string
	msg  string
}

var errorTable = [...]errorInfo{
	ErrGeneric:              {"GenericError", "an error occurred that does not correspond to any defined failure cause"},
	ErrNotSupported:         {"NotSupported", "the requested operation or a parameter is not supported"},
	ErrNotPermitted:         {"NotPermitted", "the requested action is denied by a policy"},
	ErrBufferTooSmall:       {"BufferTooSmall", "an output buffer is too small"},
	ErrAlreadyExists:        {"AlreadyExists", "the item already exists"},
	ErrDoesNotExist:         {"DoesNotExist", "the item does not exist"},
	ErrBadState:             {"BadState", "the requested action cannot be performed in the current state"},
	ErrInvalidArgument:      {"InvalidArgument", "the parameters passed to the function are invalid"},
	ErrInsufficientMemory:   {"InsufficientMemory", "there is not enough runtime memory"},
	ErrInsufficientStorage:  {"InsufficientStorage", "there is not enough persistent storage"},
	ErrCommunicationFailure: {"CommunicationFailure", "there was a communication failure inside the implementation"},
	ErrStorageFailure:       {"StorageFailure", "there was a storage failure that may have led to data loss"},
	ErrDataCorrupt:          {"DataCorrupt", "stored data has been corrupted"},
	ErrDataInvalid:          {"DataInvalid", "data read from storage is not valid for the implementation"},
	ErrHardwareFailure:      {"HardwareFailure", "a hardware failure was detected"},
	ErrCorruptionDetected:   {"CorruptionDetected", "a tampering attempt was detected"},
	ErrInsufficientEntropy:  {"InsufficientEntropy", "there is not enough entropy to generate random data"},
	ErrInvalidSignature:     {"InvalidSignature", "the signature, MAC or hash is incorrect"},
	ErrInvalidPadding:       {"InvalidPadding", "the decrypted padding is incorrect"},
	ErrInsufficientData:     {"InsufficientData", "insufficient data when attempting to read from a resource"},
	ErrInvalidHandle:        {"InvalidHandle", "the key handle is not valid"},
}

// Valid reports whether e is one of the defined kinds.
func (e Error) Valid() bool {
	return e >= ErrGeneric && e <= lastError
}

// Error implements the error interface.
func (e Error) Error() string {
	if !e.Valid() {
		return "psa: unknown error"
	}
	return "psa: " + errorTable[e].msg
}

// Name returns the identifier of the kind, for example "BadState".
func (e Error) Name() string {
	if !e.Valid() {
		return "Unknown"
	}
	return errorTable[e].name
}

// Errors returns every kind in declaration order. The slice is freshly
// allocated on each call.
func Errors() []Error {
	out := make([]Error, 0, int(lastError))
	for e := ErrGeneric; e <= lastError; e++ {
		out = append(out, e)
	}
	return out
}

// ParseError returns the kind whose Name matches name, ignoring case.
func ParseError(name string) (Error, bool) {
	name = strings.TrimSpace(name)
	for e := ErrGeneric; e <= lastError; e++ {
		if strings.EqualFold(errorTable[e].name, name) {
			return e, true
		}
	}
	return 0, false
}
