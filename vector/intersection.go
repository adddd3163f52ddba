package vector

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/episodex/epibit/episode"
	"github.com/episodex/epibit/errs"
)

// Intersection computes the pairwise interaction between every element i of v
// and every element j > i of other — the strict upper triangle of the index
// space — and collects the non-zero results.
//
// Each pair's encodings are cloned, post-expanded by extraBits and ANDed (see
// episode.Interaction). Pairs whose interaction is all-zero are omitted. The
// key for a pair is "labelsSelf[i] - labelsOther[j]" when both label slices
// are supplied, and "i j" otherwise.
//
// The two collections must have equal element counts, and supplied label
// slices must cover every element; either violation fails with
// errs.ErrIncompatibleSize before any pair is computed.
//
// Pairs are independent pure functions of (i, j), so the rows of the triangle
// are fanned out across a bounded errgroup; the result is identical to the
// sequential double loop.
//
// Returns:
//   - map[string]*big.Int: Non-zero interaction code per pair key
//   - map[string]struct{}: The set of those keys
//   - error: errs.ErrIncompatibleSize on shape violations
func (v *Vector) Intersection(other *Vector, extraBits int, labelsSelf, labelsOther []string) (map[string]*big.Int, map[string]struct{}, error) {
	if other == nil || v.Len() != other.Len() {
		return nil, nil, fmt.Errorf("%w: intersecting with an incompatible vector", errs.ErrIncompatibleSize)
	}

	n := v.Len()
	labeled := labelsSelf != nil && labelsOther != nil
	if labeled && (len(labelsSelf) < n || len(labelsOther) < n) {
		return nil, nil, fmt.Errorf("%w: labels must cover all %d elements", errs.ErrIncompatibleSize, n)
	}

	var (
		mu      sync.Mutex
		results = make(map[string]*big.Int)
		keys    = make(map[string]struct{})
	)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		g.Go(func() error {
			left, err := v.At(i)
			if err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				right, err := other.At(j)
				if err != nil {
					return err
				}

				// Interaction clones its operands, so left is safe to reuse
				// across the inner loop.
				inter, err := episode.Interaction(left, right, extraBits)
				if err != nil {
					return err
				}
				if inter.IsZero() {
					continue
				}

				key := fmt.Sprintf("%d %d", i, j)
				if labeled {
					key = labelsSelf[i] + " - " + labelsOther[j]
				}

				mu.Lock()
				results[key] = inter.Value()
				keys[key] = struct{}{}
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return results, keys, nil
}
