package psa

import "errors"

// Status is the typed mirror of a native psa_status_t: either Success or an
// Error. The zero value is Success.
type Status struct {
	err Error
}

// Success is the Status of an operation that completed.
var Success = Status{}

// StatusError returns the Status wrapping e. Values outside the defined kinds
// are recorded as ErrGeneric.
func StatusError(e Error) Status {
	if !e.Valid() {
		e = ErrGeneric
	}
	return Status{err: e}
}

// FromResult converts a Go error back into a Status. A nil error is Success,
// an error wrapping an Error is that kind, and anything else is ErrGeneric.
func FromResult(err error) Status {
	if err == nil {
		return Success
	}
	var e Error
	if errors.As(err, &e) {
		return StatusError(e)
	}
	return StatusError(ErrGeneric)
}

// IsSuccess reports whether s is Success.
func (s Status) IsSuccess() bool {
	return s.err == 0
}

// Kind returns the wrapped Error and true, or zero and false for Success.
func (s Status) Kind() (Error, bool) {
	if s.IsSuccess() {
		return 0, false
	}
	return s.err, true
}

// ToResult projects s onto the Go error convention: nil for Success, the
// wrapped Error otherwise. It has no side effects.
func (s Status) ToResult() error {
	if s.IsSuccess() {
		return nil
	}
	return s.err
}

func (s Status) String() string {
	if s.IsSuccess() {
		return "Success"
	}
	return "Error(" + s.err.Name() + ")"
}
