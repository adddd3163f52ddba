// Package errs defines the sentinel errors shared across epibit packages.
//
// Every error here signals an input-contract violation: the caller passed an
// encoding, index, or collection that breaks a documented precondition. None
// of them is transient or retryable, and no operation that returns one leaves
// a partial result behind. Call sites add context with
// fmt.Errorf("%w: ...", errs.ErrX) so callers can match with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidWidth indicates a value that does not fit its declared bit
	// width at construction time. The constructor rejects any value greater
	// than or equal to 2^width - 1, so the all-ones pattern is deliberately
	// unconstructible.
	ErrInvalidWidth = errors.New("value does not fit the declared bit width")

	// ErrIncompatibleOperands indicates a binary combinator invoked on
	// encodings of differing widths, or on a nil operand.
	ErrIncompatibleOperands = errors.New("operands are not equally sized encodings")

	// ErrIndexOutOfRange indicates a collection accessor index outside
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIncompatibleSize indicates collections or label/weight shapes whose
	// element counts do not line up for the requested operation.
	ErrIncompatibleSize = errors.New("incompatible collection size")
)
