package vector

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/episodex/epibit/episode"
	"github.com/episodex/epibit/errs"
)

// Vector is an ordered collection of episode encodings sharing one declared
// bit width. It holds raw codes, not Encoding instances: At materializes a
// fresh Encoding on every call, so there is no shared mutable state between
// accesses.
type Vector struct {
	storage Storage
	width   int
}

// NewDense creates a dense Vector from raw codes. Every code is validated
// against the encoding invariant for the declared width up front, so At can
// never fail for an in-range index.
//
// Parameters:
//   - codes: Raw bitmask per element; the slice contents are copied
//   - width: Uniform bit width shared by all elements
//
// Returns:
//   - *Vector: The constructed collection
//   - error: errs.ErrInvalidWidth if any code does not fit the width
func NewDense(codes []*big.Int, width int) (*Vector, error) {
	copied := make([]*big.Int, len(codes))
	for i, code := range codes {
		if _, err := episode.NewFromBig(code, width); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		copied[i] = new(big.Int).Set(code)
	}

	return &Vector{storage: &denseStorage{codes: copied}, width: width}, nil
}

// NewDenseUint64 is NewDense for codes that fit in 64 bits.
func NewDenseUint64(codes []uint64, width int) (*Vector, error) {
	bigs := make([]*big.Int, len(codes))
	for i, code := range codes {
		bigs[i] = new(big.Int).SetUint64(code)
	}

	return NewDense(bigs, width)
}

// NewSparse creates a sparse Vector of the given element count from parallel
// row/code slices; rows not listed read as all-zero encodings. Rows may be
// given in any order. Duplicate or out-of-range rows and codes that do not
// fit the width are rejected.
func NewSparse(rows []int, codes []*big.Int, size, width int) (*Vector, error) {
	if len(rows) != len(codes) {
		return nil, fmt.Errorf("%w: %d rows but %d codes", errs.ErrIncompatibleSize, len(rows), len(codes))
	}
	for i, code := range codes {
		if _, err := episode.NewFromBig(code, width); err != nil {
			return nil, fmt.Errorf("row %d: %w", rows[i], err)
		}
	}

	storage, err := newSparseStorage(rows, codes, size)
	if err != nil {
		return nil, err
	}

	return &Vector{storage: storage, width: width}, nil
}

// Len returns the number of encodings held.
func (v *Vector) Len() int {
	return v.storage.Len()
}

// Width returns the uniform bit width shared by all elements.
func (v *Vector) Width() int {
	return v.width
}

// Kind identifies the storage backend the vector was constructed with.
func (v *Vector) Kind() StorageKind {
	return v.storage.Kind()
}

// At materializes the encoding at index. Each call returns an independent
// instance; mutating it does not affect the collection. Fails with
// errs.ErrIndexOutOfRange outside [0, Len()).
func (v *Vector) At(index int) (*episode.Encoding, error) {
	code, err := v.storage.ValueAt(index)
	if err != nil {
		return nil, err
	}

	return episode.NewFromBig(code, v.width)
}

// All iterates the collection in order, materializing each element the same
// way At does.
func (v *Vector) All() iter.Seq2[int, *episode.Encoding] {
	return func(yield func(int, *episode.Encoding) bool) {
		for i := 0; i < v.storage.Len(); i++ {
			enc, err := v.At(i)
			if err != nil {
				// Unreachable for in-range indices: constructors validate
				// every element against the width invariant.
				return
			}
			if !yield(i, enc) {
				return
			}
		}
	}
}

// Transform recombines the collection under an integer weight matrix.
//
// The matrix is supplied pre-transposed: weights[i][j] is the contribution of
// source element j to output i, so iteration runs target rows by source
// columns. Output i is the bitwise OR over j of (code_j * weights[i][j]) and
// shares the collection's width.
//
// A weight of 0 excludes a source; weights outside {0, 1} multiply the raw
// integer before the union, which mixes arithmetic scaling into a bitwise
// merge — the literal semantics are preserved, but only selection masks of 0s
// and 1s produce bit-clean results.
//
// Fails with errs.ErrIncompatibleSize when a row's length differs from Len()
// (including non-empty weights over an empty collection), and with
// errs.ErrInvalidWidth when a merged value no longer fits the width (possible
// with multiplicative weights).
func (v *Vector) Transform(weights [][]int64) ([]*episode.Encoding, error) {
	results := make([]*episode.Encoding, 0, len(weights))
	for i, row := range weights {
		if len(row) != v.Len() {
			return nil, fmt.Errorf("%w: weights row %d has %d columns, want %d",
				errs.ErrIncompatibleSize, i, len(row), v.Len())
		}

		merged := new(big.Int)
		scaled := new(big.Int)
		for j, weight := range row {
			if weight == 0 {
				continue
			}
			code, err := v.storage.ValueAt(j)
			if err != nil {
				return nil, err
			}
			scaled.Mul(code, big.NewInt(weight))
			merged.Or(merged, scaled)
		}

		enc, err := episode.NewFromBig(merged, v.width)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		results = append(results, enc)
	}

	return results, nil
}
