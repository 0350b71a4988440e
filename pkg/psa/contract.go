package psa

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Native psa_status_t sentinels as published in psa/crypto_values.h.
const (
	codeSuccess              int32 = 0
	codeGenericError         int32 = -132
	codeNotPermitted         int32 = -133
	codeNotSupported         int32 = -134
	codeInvalidArgument      int32 = -135
	codeInvalidHandle        int32 = -136
	codeBadState             int32 = -137
	codeBufferTooSmall       int32 = -138
	codeAlreadyExists        int32 = -139
	codeDoesNotExist         int32 = -140
	codeInsufficientMemory   int32 = -141
	codeInsufficientStorage  int32 = -142
	codeInsufficientData     int32 = -143
	codeCommunicationFailure int32 = -145
	codeStorageFailure       int32 = -146
	codeHardwareFailure      int32 = -147
	codeInsufficientEntropy  int32 = -148
	codeInvalidSignature     int32 = -149
	codeInvalidPadding       int32 = -150
	codeCorruptionDetected   int32 = -151
	codeDataCorrupt          int32 = -152
	codeDataInvalid          int32 = -153
)

// Versions of the built-in contracts.
const (
	// ContractVersionBeta3 is the ABI currently targeted by the bindings. It
	// has no codes for ErrDataCorrupt, ErrDataInvalid and ErrCorruptionDetected.
	ContractVersionBeta3 = "1.0-beta3"
	// ContractVersion1 covers every Error kind.
	ContractVersion1 = "1.0"
)

// Contract is one version of the native status-code ABI: the success code
// and the code of every Error kind the version can represent. A Contract is
// immutable and safe for concurrent use.
//
// Decode and Encode are total. Decoding an unknown code and encoding a kind
// the contract cannot represent both yield GenericError and emit a diagnostic
// record through the logger installed with SetLogger. Encode is therefore not
// an inverse of Decode outside the representable subset.
type Contract struct {
	version string
	success int32
	codes   map[Error]int32
	kinds   map[int32]Error
}

var (
	contractBeta3 = newContract(ContractVersionBeta3, codeSuccess, map[Error]int32{
		ErrGeneric:              codeGenericError,
		ErrNotSupported:         codeNotSupported,
		ErrNotPermitted:         codeNotPermitted,
		ErrBufferTooSmall:       codeBufferTooSmall,
		ErrAlreadyExists:        codeAlreadyExists,
		ErrDoesNotExist:         codeDoesNotExist,
		ErrBadState:             codeBadState,
		ErrInvalidArgument:      codeInvalidArgument,
		ErrInsufficientMemory:   codeInsufficientMemory,
		ErrInsufficientStorage:  codeInsufficientStorage,
		ErrCommunicationFailure: codeCommunicationFailure,
		ErrStorageFailure:       codeStorageFailure,
		ErrHardwareFailure:      codeHardwareFailure,
		ErrInsufficientEntropy:  codeInsufficientEntropy,
		ErrInvalidSignature:     codeInvalidSignature,
		ErrInvalidPadding:       codeInvalidPadding,
		ErrInsufficientData:     codeInsufficientData,
		ErrInvalidHandle:        codeInvalidHandle,
	})

	contractV1 = contractBeta3.extend(ContractVersion1, map[Error]int32{
		ErrDataCorrupt:        codeDataCorrupt,
		ErrDataInvalid:        codeDataInvalid,
		ErrCorruptionDetected: codeCorruptionDetected,
	})

	builtinContracts = []*Contract{contractBeta3, contractV1}

	defaultContract atomic.Pointer[Contract]
)

func init() {
	defaultContract.Store(contractBeta3)
}

// NewContract builds a Contract for an ABI version not shipped with this
// package. codes must contain ErrGeneric, may omit other kinds, and must not
// reuse a code (including success). Violations return an error wrapping
// ErrInvalidArgument.
func NewContract(version string, success int32, codes map[Error]int32) (*Contract, error) {
	if version == "" {
		return nil, fmt.Errorf("psa: contract version is empty: %w", ErrInvalidArgument)
	}
	if _, ok := codes[ErrGeneric]; !ok {
		return nil, fmt.Errorf("psa: contract %s has no code for %s: %w", version, ErrGeneric.Name(), ErrInvalidArgument)
	}

	seen := map[int32]Error{success: 0}
	for e, code := range codes {
		if !e.Valid() {
			return nil, fmt.Errorf("psa: contract %s maps undefined kind %d: %w", version, uint8(e), ErrInvalidArgument)
		}
		if prev, dup := seen[code]; dup {
			other := "Success"
			if prev != 0 {
				other = prev.Name()
			}
			return nil, fmt.Errorf("psa: contract %s reuses code %d for %s and %s: %w", version, code, other, e.Name(), ErrInvalidArgument)
		}
		seen[code] = e
	}

	return newContract(version, success, codes), nil
}

func newContract(version string, success int32, codes map[Error]int32) *Contract {
	c := &Contract{
		version: version,
		success: success,
		codes:   make(map[Error]int32, len(codes)),
		kinds:   make(map[int32]Error, len(codes)),
	}
	for e, code := range codes {
		c.codes[e] = code
		c.kinds[code] = e
	}
	return c
}

func (c *Contract) extend(version string, codes map[Error]int32) *Contract {
	merged := make(map[Error]int32, len(c.codes)+len(codes))
	for e, code := range c.codes {
		merged[e] = code
	}
	for e, code := range codes {
		merged[e] = code
	}
	return newContract(version, c.success, merged)
}

// Contracts returns the built-in contracts, oldest first.
func Contracts() []*Contract {
	return append([]*Contract(nil), builtinContracts...)
}

// LookupContract returns the built-in contract for version.
func LookupContract(version string) (*Contract, error) {
	for _, c := range builtinContracts {
		if c.version == version {
			return c, nil
		}
	}
	return nil, fmt.Errorf("psa: unknown contract version %q: %w", version, ErrNotSupported)
}

// DefaultContract returns the contract used by Decode, Encode and the
// initialization gate.
func DefaultContract() *Contract {
	return defaultContract.Load()
}

// SetDefaultContract replaces the process-wide contract. Passing nil restores
// ContractVersionBeta3.
func SetDefaultContract(c *Contract) {
	if c == nil {
		c = contractBeta3
	}
	defaultContract.Store(c)
}

// Version returns the ABI version the contract describes.
func (c *Contract) Version() string { return c.version }

// SuccessCode returns the native code for Success.
func (c *Contract) SuccessCode() int32 { return c.success }

// Code returns the native code for e, if the contract defines one.
func (c *Contract) Code(e Error) (int32, bool) {
	code, ok := c.codes[e]
	return code, ok
}

// Representable reports whether e has a native code in this contract.
func (c *Contract) Representable(e Error) bool {
	_, ok := c.codes[e]
	return ok
}

// Unrepresentable lists the kinds without a native code, in declaration order.
func (c *Contract) Unrepresentable() []Error {
	var out []Error
	for _, e := range Errors() {
		if !c.Representable(e) {
			out = append(out, e)
		}
	}
	return out
}

// Decode maps a native status code to a Status. Unknown codes yield
// StatusError(ErrGeneric) and a diagnostic record.
func (c *Contract) Decode(code int32) Status {
	if code == c.success {
		return Success
	}
	if e, ok := c.kinds[code]; ok {
		return StatusError(e)
	}

	CurrentLogger().Error(context.Background(), "status code not recognised",
		"code", code,
		"contract", c.version,
	)
	return StatusError(ErrGeneric)
}

// Encode maps a Status to its native code. Kinds the contract cannot
// represent yield the generic error code and a diagnostic record.
func (c *Contract) Encode(s Status) int32 {
	e, failed := s.Kind()
	if !failed {
		return c.success
	}
	if code, ok := c.codes[e]; ok {
		return code
	}

	CurrentLogger().Error(context.Background(), "status has no equivalent code",
		"error", e.Name(),
		"contract", c.version,
	)
	return c.codes[ErrGeneric]
}
