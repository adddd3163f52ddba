package vector

import (
	"fmt"
	"math/big"

	"github.com/episodex/epibit/errs"
)

// Storage is the capability contract a Vector reads its elements through.
// Implementations must provide O(1) (or better amortized) per-index access;
// the vector is agnostic to how the codes are laid out behind it.
type Storage interface {
	// Len returns the number of elements held.
	Len() int

	// ValueAt returns the raw code at index, failing with
	// errs.ErrIndexOutOfRange outside [0, Len()). The returned integer is
	// owned by the storage and must not be mutated by callers.
	ValueAt(index int) (*big.Int, error)

	// Kind identifies the backend.
	Kind() StorageKind
}

// denseStorage backs a Vector with a plain slice of raw codes.
type denseStorage struct {
	codes []*big.Int
}

func (s *denseStorage) Len() int {
	return len(s.codes)
}

func (s *denseStorage) ValueAt(index int) (*big.Int, error) {
	if index < 0 || index >= len(s.codes) {
		return nil, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, len(s.codes))
	}

	return s.codes[index], nil
}

func (s *denseStorage) Kind() StorageKind {
	return KindDense
}
