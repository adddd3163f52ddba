package episode

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/episodex/epibit/errs"
)

// Encoding is a fixed-width bitmask representing a time-discretized interval
// of activity. The zero value is not usable; construct instances with New,
// NewFromBig or FromTimeWindow.
type Encoding struct {
	value *big.Int
	width int
}

// New creates an Encoding from a raw 64-bit code and a declared bit width.
//
// It fails with errs.ErrInvalidWidth when width is not positive or when the
// value does not fit: any value >= 2^width - 1 is rejected, so the all-ones
// pattern of a given width is not constructible.
//
// Parameters:
//   - value: Raw bitmask, interpreted MSB-first within the declared width
//   - width: Number of significant bit positions (must be >= 1)
//
// Returns:
//   - *Encoding: The constructed encoding
//   - error: errs.ErrInvalidWidth if the value does not fit the width
func New(value uint64, width int) (*Encoding, error) {
	return NewFromBig(new(big.Int).SetUint64(value), width)
}

// NewFromBig creates an Encoding from an arbitrary-precision code and a
// declared bit width. See New for the construction contract; negative values
// are rejected as well.
func NewFromBig(value *big.Int, width int) (*Encoding, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d is not positive", errs.ErrInvalidWidth, width)
	}
	if value == nil || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be a non-negative integer", errs.ErrInvalidWidth)
	}
	if value.Cmp(onesMask(width)) >= 0 {
		return nil, fmt.Errorf("%w: value %s is too large to fit width %d", errs.ErrInvalidWidth, value, width)
	}

	return &Encoding{value: new(big.Int).Set(value), width: width}, nil
}

// newUnchecked wraps an internally produced value without the construction
// boundary check. Combinator results stay within their operands' width by
// construction, but may legitimately reach the all-ones pattern that New
// rejects; re-checking would break algebraic closure.
func newUnchecked(value *big.Int, width int) *Encoding {
	return &Encoding{value: value, width: width}
}

// Width returns the declared number of significant bit positions.
func (e *Encoding) Width() int {
	return e.width
}

// Value returns a copy of the raw code. Mutating the returned integer does
// not affect the encoding.
func (e *Encoding) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Uint64 returns the raw code as a uint64 when it fits, with ok=false
// otherwise.
func (e *Encoding) Uint64() (uint64, bool) {
	if !e.value.IsUint64() {
		return 0, false
	}

	return e.value.Uint64(), true
}

// IsZero reports whether no bit is set.
func (e *Encoding) IsZero() bool {
	return e.value.Sign() == 0
}

// Magnitude returns the number of set bits in the encoding.
func (e *Encoding) Magnitude() int {
	count := 0
	for _, word := range e.value.Bits() {
		count += bits.OnesCount(uint(word))
	}

	return count
}

// Lshift returns the raw code shifted left by n bit positions. The declared
// width is unchanged and the result is not masked: this is a pure integer
// shift, exposed as a primitive for composition.
func (e *Encoding) Lshift(n int) *big.Int {
	return new(big.Int).Lsh(e.value, uint(n))
}

// Rshift returns the raw code shifted right by n bit positions. Like Lshift,
// width is unchanged and no masking is applied.
func (e *Encoding) Rshift(n int) *big.Int {
	return new(big.Int).Rsh(e.value, uint(n))
}

// BitSequence returns the canonical text form of the encoding: exactly width
// characters of '0'/'1', most-significant bit first, left zero-padded
// regardless of the raw value's minimal bit length.
//
// This is the only text format the library defines; diagnostic and logging
// collaborators should print this.
func (e *Encoding) BitSequence() string {
	out := make([]byte, e.width)
	for pos := range out {
		// Bit position 0 is the MSB, i.e. integer bit width-1.
		out[pos] = '0' + byte(e.value.Bit(e.width-1-pos))
	}

	return string(out)
}

// ScaleDown reduces the encoding's resolution in place by OR-merging
// consecutive runs of groupSize bits, starting from the most-significant end.
// Output bit k (MSB-first) is set iff any bit of source group k was set. The
// new width is ceil(width/groupSize); the last group may be shorter when the
// width does not divide evenly.
//
// A groupSize of 1 (or less) leaves the encoding unchanged.
func (e *Encoding) ScaleDown(groupSize int) {
	if groupSize <= 1 {
		return
	}

	finalWidth := (e.width + groupSize - 1) / groupSize
	result := new(big.Int)
	for k := 0; k < finalWidth; k++ {
		lo := k * groupSize
		hi := min(lo+groupSize, e.width)
		for pos := lo; pos < hi; pos++ {
			if e.value.Bit(e.width-1-pos) == 1 {
				result.SetBit(result, finalWidth-1-k, 1)
				break
			}
		}
	}

	e.value = result
	e.width = finalWidth
}

// PostExpand extends every set bit's "on" state toward the least-significant
// (temporally later) end by extraBits positions, in place. This models an
// effect that lingers after the episode itself ends.
//
// Bits pushed past position width-1 are discarded; the declared width never
// changes and the result always stays within it. extraBits <= 0 is a no-op.
func (e *Encoding) PostExpand(extraBits int) {
	for i := 0; i < extraBits; i++ {
		// Shift toward the LSB end; spill past position width-1 falls off
		// the integer, so no width mask is needed.
		e.value.Or(e.value, new(big.Int).Rsh(e.value, 1))
	}
}

// Clone returns an independent copy with the same value and width.
func (e *Encoding) Clone() *Encoding {
	return newUnchecked(new(big.Int).Set(e.value), e.width)
}

// ScoreBitOrder computes a recency-weighted score: the sum over all set bit
// positions p of (width - p), with p counted MSB-first. Earlier (more
// significant) bits contribute more.
func (e *Encoding) ScoreBitOrder() int {
	score := 0
	for pos := 0; pos < e.width; pos++ {
		if e.value.Bit(e.width-1-pos) == 1 {
			score += e.width - pos
		}
	}

	return score
}

// And returns the bitwise AND of two equal-width encodings as a new instance.
// It fails with errs.ErrIncompatibleOperands when the operands are nil or
// differ in width. Operands are never mutated.
func And(a, b *Encoding) (*Encoding, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	return newUnchecked(new(big.Int).And(a.value, b.value), a.width), nil
}

// Or returns the bitwise OR of two equal-width encodings as a new instance.
// It fails with errs.ErrIncompatibleOperands when the operands are nil or
// differ in width. Operands are never mutated.
func Or(a, b *Encoding) (*Encoding, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	return newUnchecked(new(big.Int).Or(a.value, b.value), a.width), nil
}

// Interaction computes the co-occurrence of two episodes after extending each
// by extraBits of lingering effect: both operands are cloned, post-expanded,
// and ANDed. A non-zero result means the effect-extended active windows
// overlap.
//
// When either operand has a zero value the result short-circuits to an
// all-zero encoding of a's width, without checking width compatibility.
// Otherwise mismatched widths fail with errs.ErrIncompatibleOperands.
// Operands are never mutated.
func Interaction(a, b *Encoding, extraBits int) (*Encoding, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", errs.ErrIncompatibleOperands)
	}
	if a.value.Sign() == 0 || b.value.Sign() == 0 {
		return newUnchecked(new(big.Int), a.width), nil
	}
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	ea := a.Clone()
	ea.PostExpand(extraBits)
	eb := b.Clone()
	eb.PostExpand(extraBits)

	return And(ea, eb)
}

func checkOperands(a, b *Encoding) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil operand", errs.ErrIncompatibleOperands)
	}
	if a.width != b.width {
		return fmt.Errorf("%w: widths %d and %d differ", errs.ErrIncompatibleOperands, a.width, b.width)
	}

	return nil
}

// onesMask returns 2^width - 1, the all-ones pattern of the given width.
func onesMask(width int) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(width))

	return mask.Sub(mask, big.NewInt(1))
}
