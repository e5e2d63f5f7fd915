// internal/store/errors.go
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrVerifyMismatch means a written code did not read back identically.
	ErrVerifyMismatch = errors.New("store: verify mismatch")

	// ErrCapacity means the code table does not fit the medium.
	ErrCapacity = errors.New("store: layout exceeds medium capacity")
)

// MediumError is a failure reported by the backing medium.
type MediumError struct {
	Op   string // "read" or "write"
	Addr uint16
	Err  error
}

func (e *MediumError) Error() string {
	return fmt.Sprintf("store: medium %s failed at addr=%d: %v", e.Op, e.Addr, e.Err)
}

func (e *MediumError) Unwrap() error { return e.Err }

// Kind classifies store errors for reporting.
type Kind uint8

const (
	KindNone Kind = iota
	KindMedium
	KindVerifyMismatch
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMedium:
		return "medium"
	case KindVerifyMismatch:
		return "verify-mismatch"
	default:
		return "other"
	}
}

// KindOf extracts the error kind without assuming how err was wrapped.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var me *MediumError
	if errors.As(err, &me) {
		return KindMedium
	}
	if errors.Is(err, ErrVerifyMismatch) {
		return KindVerifyMismatch
	}
	return KindOther
}
