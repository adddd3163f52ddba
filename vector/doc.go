// Package vector provides ordered collections of episode encodings of uniform
// bit width, and the cross-encoding operations built on top of them.
//
// A Vector abstracts over two storage backends behind the same read contract:
// a dense slice of raw codes, and a sparse single-column layout (a roaring
// bitmap of non-zero rows plus rank-aligned values) for collections where most
// episodes are empty. Elements are materialized as episode.Encoding values on
// access; the vector itself never manipulates raw bits.
//
// The two collection-level operations are:
//
//   - Transform: linear recombination of the collection under an integer
//     weight matrix, OR-merging weighted codes into new encodings.
//   - Intersection: pairwise interaction search across two collections,
//     collecting the non-zero co-occurrences of effect-extended episodes.
package vector
