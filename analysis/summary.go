package analysis

import (
	"fmt"

	"github.com/episodex/epibit/vector"
)

// Summary aggregates per-element bitmask statistics over a collection.
type Summary struct {
	// Elements is the number of encodings in the collection.
	Elements int
	// NonZero is the number of encodings with at least one set bit.
	NonZero int
	// TotalMagnitude is the sum of set-bit counts across all elements.
	TotalMagnitude int
	// MeanMagnitude is TotalMagnitude averaged over all elements.
	MeanMagnitude float64
	// MeanDensity is the mean fraction of set bits per element (magnitude
	// over width).
	MeanDensity float64
	// TotalScore is the sum of bit-order scores across all elements.
	TotalScore int
	// TopIndex is the index of the highest-scoring element, or -1 when the
	// collection is empty. Ties keep the earliest index.
	TopIndex int
	// TopScore is the bit-order score of the element at TopIndex.
	TopScore int
}

// String returns a one-line human-readable form of the summary.
func (s *Summary) String() string {
	return fmt.Sprintf("Summary{Elements: %d, NonZero: %d, MeanMagnitude: %.2f, MeanDensity: %.4f, TopIndex: %d}",
		s.Elements, s.NonZero, s.MeanMagnitude, s.MeanDensity, s.TopIndex)
}

// Summarize walks the collection once and aggregates its statistics.
// An empty collection yields a zeroed Summary with TopIndex -1, not an error.
//
// Example:
//
//	summary, err := analysis.Summarize(episodes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary)
func Summarize(v *vector.Vector) (*Summary, error) {
	summary := &Summary{TopIndex: -1}
	if v == nil {
		return summary, nil
	}

	summary.Elements = v.Len()
	densitySum := 0.0
	for i := 0; i < v.Len(); i++ {
		enc, err := v.At(i)
		if err != nil {
			return nil, fmt.Errorf("failed to materialize element %d: %w", i, err)
		}

		magnitude := enc.Magnitude()
		if magnitude > 0 {
			summary.NonZero++
		}
		summary.TotalMagnitude += magnitude
		densitySum += float64(magnitude) / float64(enc.Width())

		score := enc.ScoreBitOrder()
		summary.TotalScore += score
		if summary.TopIndex < 0 || score > summary.TopScore {
			summary.TopIndex = i
			summary.TopScore = score
		}
	}

	if summary.Elements > 0 {
		summary.MeanMagnitude = float64(summary.TotalMagnitude) / float64(summary.Elements)
		summary.MeanDensity = densitySum / float64(summary.Elements)
	}

	return summary, nil
}
