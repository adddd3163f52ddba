package vector

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/episodex/epibit/episode"
	"github.com/episodex/epibit/errs"
)

func TestIntersection_IdenticalPair(t *testing.T) {
	// Two 2-element collections with identical encodings and no expansion:
	// the strict upper triangle holds exactly the (0, 1) pair, and with
	// extraBits 0 its value is the plain AND.
	v, err := NewDenseUint64([]uint64{0b1100, 0b0110}, 4)
	require.NoError(t, err)
	w, err := NewDenseUint64([]uint64{0b1100, 0b0110}, 4)
	require.NoError(t, err)

	results, keys, err := v.Intersection(w, 0, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, keys, 1)
	require.Contains(t, keys, "0 1")
	require.Equal(t, big.NewInt(0b0100), results["0 1"])
}

func TestIntersection_LabeledKeys(t *testing.T) {
	v, err := NewDenseUint64([]uint64{0b1100, 0b0110}, 4)
	require.NoError(t, err)

	results, keys, err := v.Intersection(v, 0,
		[]string{"warfarin", "aspirin"},
		[]string{"warfarin", "aspirin"},
	)
	require.NoError(t, err)
	require.Contains(t, keys, "warfarin - aspirin")
	require.Equal(t, big.NewInt(0b0100), results["warfarin - aspirin"])
}

func TestIntersection_IndexKeysWhenEitherLabelSliceNil(t *testing.T) {
	v, err := NewDenseUint64([]uint64{0b1100, 0b0110}, 4)
	require.NoError(t, err)

	_, keys, err := v.Intersection(v, 0, []string{"a", "b"}, nil)
	require.NoError(t, err)
	require.Contains(t, keys, "0 1")

	_, keys, err = v.Intersection(v, 0, nil, []string{"a", "b"})
	require.NoError(t, err)
	require.Contains(t, keys, "0 1")
}

func TestIntersection_OmitsZeroPairs(t *testing.T) {
	// Disjoint windows with no lingering effect never co-occur.
	v, err := NewDenseUint64([]uint64{0b1000, 0b0001}, 4)
	require.NoError(t, err)

	results, keys, err := v.Intersection(v, 0, nil, nil)
	require.NoError(t, err)
	require.Empty(t, results)
	require.Empty(t, keys)
}

func TestIntersection_ExpansionBridgesPairs(t *testing.T) {
	v, err := NewDenseUint64([]uint64{0b1000, 0b0001}, 4)
	require.NoError(t, err)

	results, _, err := v.Intersection(v, 3, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, big.NewInt(0b0001), results["0 1"])
}

func TestIntersection_SizeMismatch(t *testing.T) {
	v, err := NewDenseUint64([]uint64{1, 2}, 4)
	require.NoError(t, err)
	w, err := NewDenseUint64([]uint64{1}, 4)
	require.NoError(t, err)

	_, _, err = v.Intersection(w, 0, nil, nil)
	require.ErrorIs(t, err, errs.ErrIncompatibleSize)

	_, _, err = v.Intersection(nil, 0, nil, nil)
	require.ErrorIs(t, err, errs.ErrIncompatibleSize)
}

func TestIntersection_ShortLabels(t *testing.T) {
	v, err := NewDenseUint64([]uint64{1, 2}, 4)
	require.NoError(t, err)

	_, _, err = v.Intersection(v, 0, []string{"only-one"}, []string{"a", "b"})
	require.ErrorIs(t, err, errs.ErrIncompatibleSize)
}

func TestIntersection_MixedBackends(t *testing.T) {
	dense, err := NewDenseUint64([]uint64{0b1100, 0b0110, 0}, 4)
	require.NoError(t, err)
	sparse, err := NewSparse(
		[]int{1, 2},
		[]*big.Int{big.NewInt(0b0110), big.NewInt(0b0100)},
		3, 4,
	)
	require.NoError(t, err)

	results, _, err := dense.Intersection(sparse, 0, nil, nil)
	require.NoError(t, err)

	// (0,1): 1100 & 0110 = 0100; (0,2): 1100 & 0100 = 0100; (1,2): 0110 &
	// 0100 = 0100. The sparse all-zero row 0 is never a j > i operand.
	require.Len(t, results, 3)
	require.Equal(t, big.NewInt(0b0100), results["0 1"])
	require.Equal(t, big.NewInt(0b0100), results["0 2"])
	require.Equal(t, big.NewInt(0b0100), results["1 2"])
}

func TestIntersection_MatchesSequentialReference(t *testing.T) {
	// The parallel fan-out must be indistinguishable from the plain double
	// loop over the upper triangle.
	codes := []uint64{0b100000, 0b010000, 0b001100, 0, 0b000010, 0b000001}
	const width = 6
	const extraBits = 2

	v, err := NewDenseUint64(codes, width)
	require.NoError(t, err)

	expected := make(map[string]*big.Int)
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			a, err := v.At(i)
			require.NoError(t, err)
			b, err := v.At(j)
			require.NoError(t, err)
			inter, err := episode.Interaction(a, b, extraBits)
			require.NoError(t, err)
			if !inter.IsZero() {
				expected[fmt.Sprintf("%d %d", i, j)] = inter.Value()
			}
		}
	}

	results, keys, err := v.Intersection(v, extraBits, nil, nil)
	require.NoError(t, err)
	require.Equal(t, expected, results)
	require.Len(t, keys, len(expected))
	for key := range expected {
		require.Contains(t, keys, key)
	}
}
