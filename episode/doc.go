// Package episode implements the bitwise encoding of episodic events.
//
// An Encoding is a fixed-width bitmask over discretized time: one bit per time
// unit, most-significant bit first. Bit position 0 is the temporally earliest
// sample and position width-1 the sample nearest the reference instant. An
// active interval (say, a medication's prescription period) becomes a run of
// set bits, and questions like "did these two episodes co-occur, allowing for
// a lingering effect?" reduce to shifts, ORs and ANDs over integers instead of
// interval arithmetic.
//
// Values are arbitrary-precision (math/big.Int) because practical widths range
// from tens to low thousands of bits.
//
// The algebra is split between value semantics and in-place mutation:
//
//   - And, Or and Interaction never mutate their operands and always return a
//     fresh Encoding.
//   - ScaleDown and PostExpand rewrite the receiver in place. Instances are
//     single-owner: never call a mutator concurrently on the same instance.
//
// Construct an Encoding directly from a raw code with New/NewFromBig, or
// derive one from a calendar window with FromTimeWindow.
package episode
