package episode

import (
	"fmt"
	"math/big"
	"time"

	"github.com/episodex/epibit/errs"
	"github.com/episodex/epibit/internal/options"
)

const (
	// DefaultStep is the sampling step used by FromTimeWindow when no
	// WithStep option is passed: one day, walking backward in time.
	DefaultStep = -24 * time.Hour

	// DefaultBitCount is the encoding width used by FromTimeWindow when no
	// WithBitCount option is passed.
	DefaultBitCount = 32
)

// windowConfig holds the sampling parameters for FromTimeWindow.
type windowConfig struct {
	step     time.Duration
	bitCount int
}

// WindowOption configures how FromTimeWindow discretizes the timeline.
type WindowOption = options.Option[*windowConfig]

// WithStep sets the signed duration between consecutive samples. A negative
// step (the default, -24h) walks backward in time from the reference instant.
func WithStep(step time.Duration) WindowOption {
	return options.NoError(func(cfg *windowConfig) {
		cfg.step = step
	})
}

// WithBitCount sets the width of the derived encoding, i.e. the number of
// discrete samples taken. Fails with errs.ErrInvalidWidth when not positive.
func WithBitCount(bitCount int) WindowOption {
	return options.New(func(cfg *windowConfig) error {
		if bitCount < 1 {
			return fmt.Errorf("%w: bit count %d is not positive", errs.ErrInvalidWidth, bitCount)
		}
		cfg.bitCount = bitCount

		return nil
	})
}

// FromTimeWindow derives an Encoding from a calendar interval.
//
// It walks bitCount discrete steps from the reference instant, each of size
// step, and sets bit bitCount-1-i (MSB-first position) whenever the instant
// reached at step i falls within [start, end] inclusive. Step 0 is the
// reference instant itself, so position bitCount-1 (the least-significant
// bit) is the sample nearest the reference and position 0 the most distant.
//
// A window with start after end is not an error: it simply contains no
// instant and yields the all-zero encoding.
//
// Parameters:
//   - start: Start of the active interval (inclusive)
//   - end: End of the active interval (inclusive)
//   - reference: The instant the timeline is anchored to (e.g. the event
//     under investigation)
//   - opts: WithStep and WithBitCount; defaults are -24h and 32 bits
//
// Returns:
//   - *Encoding: The derived encoding of width bitCount
//   - error: errs.ErrInvalidWidth for a non-positive bit count
//
// Example:
//
//	// 90 daily samples leading up to the adverse event.
//	enc, err := episode.FromTimeWindow(rxStart, rxEnd, eventTime,
//	    episode.WithBitCount(90),
//	)
func FromTimeWindow(start, end, reference time.Time, opts ...WindowOption) (*Encoding, error) {
	cfg := &windowConfig{
		step:     DefaultStep,
		bitCount: DefaultBitCount,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	code := new(big.Int)
	cur := reference
	for i := 0; i < cfg.bitCount; i++ {
		if !cur.Before(start) && !cur.After(end) {
			// MSB-first position bitCount-1-i is integer bit i.
			code.SetBit(code, i, 1)
		}
		cur = cur.Add(cfg.step)
	}

	// Deriving is a construction path, so the constructor's fit check
	// applies: a window covering every sampled instant is rejected the same
	// way an explicit all-ones value would be.
	return NewFromBig(code, cfg.bitCount)
}
