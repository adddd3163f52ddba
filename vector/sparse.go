package vector

import (
	"fmt"
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/episodex/epibit/errs"
)

// sparseStorage backs a Vector with a single-column sparse layout: a roaring
// bitmap records which rows hold a non-zero code, and values are stored
// rank-aligned with the bitmap. Rows absent from the bitmap read as zero.
type sparseStorage struct {
	rows   *roaring.Bitmap
	values []*big.Int
	size   int
}

// newSparseStorage builds the backend from parallel row/code slices. Rows may
// arrive in any order; duplicates and out-of-range rows are rejected.
func newSparseStorage(rows []int, codes []*big.Int, size int) (*sparseStorage, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrIncompatibleSize, size)
	}
	if len(rows) != len(codes) {
		return nil, fmt.Errorf("%w: %d rows but %d codes", errs.ErrIncompatibleSize, len(rows), len(codes))
	}

	bm := roaring.New()
	for _, row := range rows {
		if row < 0 || row >= size {
			return nil, fmt.Errorf("%w: row %d, size %d", errs.ErrIndexOutOfRange, row, size)
		}
		if !bm.CheckedAdd(uint32(row)) {
			return nil, fmt.Errorf("%w: duplicate row %d", errs.ErrIncompatibleSize, row)
		}
	}

	// Place each code at its row's rank so lookups stay O(1)-ish regardless
	// of insertion order.
	values := make([]*big.Int, len(codes))
	for i, row := range rows {
		values[bm.Rank(uint32(row))-1] = new(big.Int).Set(codes[i])
	}

	return &sparseStorage{rows: bm, values: values, size: size}, nil
}

func (s *sparseStorage) Len() int {
	return s.size
}

func (s *sparseStorage) ValueAt(index int) (*big.Int, error) {
	if index < 0 || index >= s.size {
		return nil, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, s.size)
	}
	if !s.rows.Contains(uint32(index)) {
		return new(big.Int), nil
	}

	return s.values[s.rows.Rank(uint32(index))-1], nil
}

func (s *sparseStorage) Kind() StorageKind {
	return KindSparse
}
