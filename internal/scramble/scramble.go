package scramble

import (
	"fmt"
	"runtime"
)

// MaxChannels is the widest pixel the engine accepts. The chain cipher
// pairs channel c with byte lane c of a 32-bit keystream word, so a
// pixel carries at most four bytes.
const MaxChannels = 4

// Scrambler applies the keyed pixel transformation in either direction.
type Scrambler struct {
	// Key seeds the generator. Only the same key reverses the transformation.
	Key uint64
	// Workers caps the goroutines used for the permutation gather.
	// Zero or less means one worker per CPU.
	Workers int
}

// Encrypt scrambles a raw pixel buffer of dim pixels at channels bytes
// each: pixels are permuted as whole units, then each channel lane is
// chained through the XOR keystream. Returns a fresh buffer of the
// same length.
func (s Scrambler) Encrypt(pix []byte, dim, channels int) ([]byte, error) {
	if err := validate(pix, dim, channels); err != nil {
		return nil, err
	}

	seq := newSequence(s.Key, dim)

	permuted, err := applyPermutation(pix, channels, seq.perm, s.workers())
	if err != nil {
		return nil, err
	}

	return chainEncrypt(permuted, channels, seq.init, seq.keystream), nil
}

// Decrypt reverses Encrypt for the same key: the chain is unwound
// first, then pixels return to their original positions through the
// inverse permutation. Returns a fresh buffer of the same length.
func (s Scrambler) Decrypt(pix []byte, dim, channels int) ([]byte, error) {
	if err := validate(pix, dim, channels); err != nil {
		return nil, err
	}

	seq := newSequence(s.Key, dim)

	plain := chainDecrypt(pix, channels, seq.init, seq.keystream)

	return applyPermutation(plain, channels, invertPermutation(seq.perm), s.workers())
}

func (s Scrambler) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}

	return runtime.NumCPU()
}

// validate checks the buffer geometry shared by both directions.
func validate(pix []byte, dim, channels int) error {
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: %d", ErrChannels, channels)
	}

	if dim < 0 || len(pix) != dim*channels {
		return fmt.Errorf("%w: %d bytes for %d pixels at %d bytes each", ErrBufferSize, len(pix), dim, channels)
	}

	return nil
}
