package scramble

import "math/rand/v2"

// sequence is the pseudorandom material derived from a key for one
// transformation: the chain initialization word, one keystream word
// per pixel, and the pixel permutation.
type sequence struct {
	init      uint32
	keystream []uint32
	perm      []uint32
}

// newSequence seeds a fresh generator from key and draws, in order,
// the initialization word, dim keystream words, and a shuffle of the
// identity index list. Scrambling and unscrambling both call this with
// the same arguments, so the draw order is part of the format and must
// not change.
func newSequence(key uint64, dim int) sequence {
	rng := rand.New(rand.NewPCG(key, key))

	seq := sequence{
		init:      rng.Uint32(),
		keystream: make([]uint32, dim),
		perm:      make([]uint32, dim),
	}

	for i := range seq.keystream {
		seq.keystream[i] = rng.Uint32()
	}

	for i := range seq.perm {
		seq.perm[i] = uint32(i) //nolint:gosec
	}

	rng.Shuffle(dim, func(i, j int) {
		seq.perm[i], seq.perm[j] = seq.perm[j], seq.perm[i]
	})

	return seq
}
