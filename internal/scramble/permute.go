package scramble

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the pixel count below which the gather runs on
// a single goroutine. Small images finish before workers spin up.
const parallelThreshold = 1 << 16

// applyPermutation gathers whole pixels into a fresh buffer so that
// output pixel i is input pixel perm[i]. The channels of a pixel
// always travel together. With workers above one and a large enough
// buffer the gather splits into contiguous pixel ranges; every range
// writes a disjoint region of out, so the result is identical to the
// serial pass.
func applyPermutation(pix []byte, channels int, perm []uint32, workers int) ([]byte, error) {
	dim := len(perm)
	out := make([]byte, dim*channels)

	if workers <= 1 || dim < parallelThreshold {
		if err := gather(out, pix, channels, perm, 0, dim); err != nil {
			return nil, err
		}

		return out, nil
	}

	group := errgroup.Group{}
	group.SetLimit(workers)

	chunk := (dim + workers - 1) / workers

	for low := 0; low < dim; low += chunk {
		high := min(low+chunk, dim)

		group.Go(func() error {
			return gather(out, pix, channels, perm, low, high)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// gather copies pixels low up to high of the permuted view into out.
func gather(out, pix []byte, channels int, perm []uint32, low, high int) error {
	dim := len(perm)

	for i := low; i < high; i++ {
		src := int(perm[i])
		if src >= dim {
			return fmt.Errorf("%w: %d not below %d", ErrPermutation, src, dim)
		}

		copy(out[i*channels:(i+1)*channels], pix[src*channels:(src+1)*channels])
	}

	return nil
}

// invertPermutation returns the inverse bijection, inv[perm[i]] = i.
// Requires perm to be a permutation of 0 up to len(perm).
func invertPermutation(perm []uint32) []uint32 {
	inv := make([]uint32, len(perm))

	for i, p := range perm {
		inv[p] = uint32(i) //nolint:gosec
	}

	return inv
}
