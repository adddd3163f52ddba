package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/episodex/epibit/vector"
)

func TestSummarize_Basics(t *testing.T) {
	// widths 4: "1100" (mag 2, score 4+3=7), "0000", "0011" (mag 2, score 2+1=3)
	v, err := vector.NewDenseUint64([]uint64{0b1100, 0, 0b0011}, 4)
	require.NoError(t, err)

	s, err := Summarize(v)
	require.NoError(t, err)
	require.Equal(t, 3, s.Elements)
	require.Equal(t, 2, s.NonZero)
	require.Equal(t, 4, s.TotalMagnitude)
	require.InDelta(t, 4.0/3.0, s.MeanMagnitude, 1e-9)
	require.InDelta(t, (0.5+0+0.5)/3.0, s.MeanDensity, 1e-9)
	require.Equal(t, 10, s.TotalScore)
	require.Equal(t, 0, s.TopIndex)
	require.Equal(t, 7, s.TopScore)
}

func TestSummarize_TieKeepsEarliestIndex(t *testing.T) {
	v, err := vector.NewDenseUint64([]uint64{0b0100, 0b0100}, 4)
	require.NoError(t, err)

	s, err := Summarize(v)
	require.NoError(t, err)
	require.Equal(t, 0, s.TopIndex)
}

func TestSummarize_Empty(t *testing.T) {
	v, err := vector.NewDenseUint64(nil, 4)
	require.NoError(t, err)

	s, err := Summarize(v)
	require.NoError(t, err)
	require.Equal(t, 0, s.Elements)
	require.Equal(t, -1, s.TopIndex)
	require.Zero(t, s.MeanMagnitude)
	require.Zero(t, s.MeanDensity)
}

func TestSummarize_Nil(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Elements)
	require.Equal(t, -1, s.TopIndex)
}

func TestSummary_String(t *testing.T) {
	v, err := vector.NewDenseUint64([]uint64{0b0100}, 4)
	require.NoError(t, err)

	s, err := Summarize(v)
	require.NoError(t, err)
	require.Contains(t, s.String(), "Elements: 1")
	require.Contains(t, s.String(), "NonZero: 1")
}
