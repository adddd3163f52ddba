// Package analysis provides summary statistics over encoding collections,
// for quick exploratory passes before running pairwise interaction searches:
// how dense are the encodings, how many episodes are empty, and which element
// carries the most recency-weighted activity.
package analysis
