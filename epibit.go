// Package epibit encodes episodic events as fixed-width bitmasks and provides
// the bitwise algebra to analyze them.
//
// The encoding was designed with adverse drug event analytics in mind: each
// medication episode related to a clinical event becomes one bitmask, one bit
// per discretized time unit, anchored at the event under investigation.
// Detecting co-occurrence between two episodes — including the lingering
// effect after an episode ends — then costs a couple of shifts and an AND
// instead of interval arithmetic, which matters when collections of episodes
// are compared pairwise at scale. The same machinery applies to any episodic
// timeline data.
//
// # Core Concepts
//
//   - episode.Encoding: a single fixed-width bitmask plus its declared width,
//     with construction from a time window, scale-down, post-expand, AND/OR
//     and the pairwise interaction operator.
//   - vector.Vector: an ordered, uniform-width collection of encodings over a
//     dense or sparse backend, with the matrix Transform and the pairwise
//     Intersection search.
//   - analysis.Summarize: quick density/score statistics over a collection.
//
// # Basic Usage
//
// Encoding two medication episodes and testing their interaction:
//
//	import "github.com/episodex/epibit"
//
//	event := time.Date(2016, 5, 20, 0, 0, 0, 0, time.UTC)
//
//	// 32 daily samples walking back from the event.
//	warfarin, _ := epibit.FromTimeWindow(wStart, wEnd, event)
//	aspirin, _ := epibit.FromTimeWindow(aStart, aEnd, event)
//
//	// Allow a 3-day lingering effect on both episodes.
//	overlap, _ := episode.Interaction(warfarin, aspirin, 3)
//	if !overlap.IsZero() {
//	    fmt.Println(overlap.BitSequence())
//	}
//
// Pairwise interaction search across a collection:
//
//	episodes, _ := epibit.NewDenseVectorUint64(codes, 32)
//	found, keys, _ := episodes.Intersection(episodes, 3, labels, labels)
//
// This package provides convenient top-level wrappers around the episode and
// vector packages, simplifying the most common use cases. For the full
// algebra, use those packages directly.
package epibit

import (
	"math/big"
	"time"

	"github.com/episodex/epibit/episode"
	"github.com/episodex/epibit/internal/hash"
	"github.com/episodex/epibit/vector"
)

// NewEncoding creates an encoding from a raw 64-bit code and a declared
// width. It fails with errs.ErrInvalidWidth when the value does not fit;
// values at or above 2^width - 1 are rejected.
func NewEncoding(value uint64, width int) (*episode.Encoding, error) {
	return episode.New(value, width)
}

// NewEncodingFromBig is NewEncoding for codes wider than 64 bits.
func NewEncodingFromBig(value *big.Int, width int) (*episode.Encoding, error) {
	return episode.NewFromBig(value, width)
}

// FromTimeWindow derives an encoding from a calendar interval anchored at a
// reference instant. By default it takes 32 daily samples walking backward
// from the reference; override with episode.WithStep and episode.WithBitCount.
//
// Example:
//
//	enc, err := epibit.FromTimeWindow(rxStart, rxEnd, eventTime,
//	    episode.WithStep(-time.Hour),
//	    episode.WithBitCount(48),
//	)
func FromTimeWindow(start, end, reference time.Time, opts ...episode.WindowOption) (*episode.Encoding, error) {
	return episode.FromTimeWindow(start, end, reference, opts...)
}

// NewDenseVector creates a collection backed by a plain slice of raw codes.
// Use this when most episodes carry activity.
func NewDenseVector(codes []*big.Int, width int) (*vector.Vector, error) {
	return vector.NewDense(codes, width)
}

// NewDenseVectorUint64 is NewDenseVector for codes that fit in 64 bits.
func NewDenseVectorUint64(codes []uint64, width int) (*vector.Vector, error) {
	return vector.NewDenseUint64(codes, width)
}

// NewSparseVector creates a collection of the given element count where only
// the listed rows carry a code; every other row reads as an all-zero
// encoding. Use this for large, mostly-empty episode collections.
//
// Example:
//
//	// 10_000 candidate episodes, 4 of them active.
//	episodes, err := epibit.NewSparseVector(
//	    []int{17, 204, 991, 4242},
//	    codes,
//	    10_000, 32,
//	)
func NewSparseVector(rows []int, codes []*big.Int, size, width int) (*vector.Vector, error) {
	return vector.NewSparse(rows, codes, size, width)
}

// EventID converts an event label to its 64-bit xxHash64 identifier.
//
// Use this when the application keys episodes by human-readable labels
// (e.g. drug names) but needs fixed-size, deterministic IDs for lookups or
// joins across collections. The hash is stable across processes and runs.
//
// Example:
//
//	warfarinID := epibit.EventID("warfarin")
//	aspirinID := epibit.EventID("aspirin.low-dose")
func EventID(label string) uint64 {
	return hash.ID(label)
}
