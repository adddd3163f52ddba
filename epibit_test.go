package epibit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/episodex/epibit/episode"
	"github.com/episodex/epibit/errs"
	"github.com/episodex/epibit/vector"
)

func TestNewEncoding(t *testing.T) {
	e, err := NewEncoding(2147483648, 32)
	require.NoError(t, err)
	require.Equal(t, 32, e.Width())
	require.Equal(t, 32, e.ScoreBitOrder())

	_, err = NewEncoding(15, 4)
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
}

func TestFromTimeWindow_Wrapper(t *testing.T) {
	event := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	e, err := FromTimeWindow(event, event, event,
		episode.WithStep(-time.Second),
		episode.WithBitCount(4),
	)
	require.NoError(t, err)

	u, ok := e.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(1), u)
}

func TestVectorWrappers(t *testing.T) {
	dense, err := NewDenseVectorUint64([]uint64{0b1000, 0b0010}, 4)
	require.NoError(t, err)
	require.Equal(t, vector.KindDense, dense.Kind())
	require.Equal(t, 2, dense.Len())

	sparse, err := NewSparseVector(nil, nil, 8, 4)
	require.NoError(t, err)
	require.Equal(t, vector.KindSparse, sparse.Kind())
	require.Equal(t, 8, sparse.Len())

	e, err := sparse.At(5)
	require.NoError(t, err)
	require.True(t, e.IsZero())
}

func TestEventID(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), EventID(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), EventID("test"))

	// Deterministic and label-sensitive.
	require.Equal(t, EventID("warfarin"), EventID("warfarin"))
	require.NotEqual(t, EventID("warfarin"), EventID("aspirin"))
}
