package psa

import (
	"sync/atomic"

	"github.com/psacrypto/psa-crypto-go/internal/bindings"
)

// InitFunc is a native initializer returning a psa_status_t.
type InitFunc func() int32

// Gate records whether a native library has been initialized. It moves from
// uninitialized to initialized on the first successful Init and never moves
// back. A Gate is safe for concurrent use.
type Gate struct {
	init InitFunc
	done atomic.Bool
}

// NewGate returns an uninitialized Gate driving fn.
func NewGate(fn InitFunc) *Gate {
	return &Gate{init: fn}
}

// Init calls the native initializer, decodes its status through the default
// contract and, on success, marks the gate initialized. The initializer runs on
// every call; a failure leaves the gate unchanged and is returned as is, so
// callers may retry later. A Gate without an initializer reports
// ErrNotSupported.
func (g *Gate) Init() error {
	if g.init == nil {
		return ErrNotSupported
	}
	if err := Check(g.init()); err != nil {
		return err
	}
	// Losing the race only means another caller already set the flag.
	g.done.CompareAndSwap(false, true)
	return nil
}

// Initialized returns nil once Init has succeeded and ErrBadState before.
func (g *Gate) Initialized() error {
	if g.done.Load() {
		return nil
	}
	return ErrBadState
}

// Invoke runs a native call that returns a psa_status_t after checking that
// the gate is initialized, and decodes the result. fn is not called when
// Initialized fails, and a nil fn is ErrInvalidArgument.
func (g *Gate) Invoke(fn func() int32) error {
	if err := g.Initialized(); err != nil {
		return err
	}
	if fn == nil {
		return ErrInvalidArgument
	}
	return Check(fn())
}

var library = NewGate(bindings.CryptoInit)

// Init initializes the native PSA Crypto library.
//
// Applications must call Init before any other operation on the library. It
// may be called more than once; once a call succeeds, Initialized reports
// success for the rest of the process even if later calls fail.
func Init() error {
	return library.Init()
}

// Initialized reports whether Init has succeeded, returning ErrBadState if it
// has not. Operations built on the native library call it first.
func Initialized() error {
	return library.Initialized()
}

// Invoke is Gate.Invoke on the process-wide library gate.
func Invoke(fn func() int32) error {
	return library.Invoke(fn)
}
