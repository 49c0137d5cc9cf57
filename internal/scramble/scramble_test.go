package scramble_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/goscram/internal/scramble"
)

func pattern(n int) []byte {
	pix := make([]byte, n)
	for i := range pix {
		pix[i] = byte(i*13 + 7)
	}

	return pix
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for channels := 1; channels <= scramble.MaxChannels; channels++ {
		const dim = 512

		scrambler := scramble.Scrambler{Key: 42}
		pix := pattern(dim * channels)

		encrypted, err := scrambler.Encrypt(pix, dim, channels)
		if err != nil {
			t.Fatalf("channels=%d: Encrypt: %v", channels, err)
		}

		if len(encrypted) != len(pix) {
			t.Fatalf("channels=%d: Encrypt returned %d bytes, want %d", channels, len(encrypted), len(pix))
		}

		if bytes.Equal(encrypted, pix) {
			t.Errorf("channels=%d: Encrypt left the buffer unchanged", channels)
		}

		decrypted, err := scrambler.Decrypt(encrypted, dim, channels)
		if err != nil {
			t.Fatalf("channels=%d: Decrypt: %v", channels, err)
		}

		if !bytes.Equal(decrypted, pix) {
			t.Errorf("channels=%d: Decrypt did not restore the original", channels)
		}
	}
}

func TestEncryptDeterministic(t *testing.T) {
	t.Parallel()

	scrambler := scramble.Scrambler{Key: 1234567}
	pix := pattern(300)

	first, err := scrambler.Encrypt(pix, 100, 3)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	second, err := scrambler.Encrypt(pix, 100, 3)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same key and input produced different output")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	t.Parallel()

	pix := pattern(256)

	encrypted, err := scramble.Scrambler{Key: 42}.Encrypt(pix, 256, 1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	decrypted, err := scramble.Scrambler{Key: 43}.Decrypt(encrypted, 256, 1)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if bytes.Equal(decrypted, pix) {
		t.Error("wrong key restored the original")
	}
}

// TestRoundTripTiny covers the smallest interesting buffers, where the
// chain consists mostly of the init word.
func TestRoundTripTiny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pix      []byte
		dim      int
		channels int
	}{
		{name: "two gray pixels", pix: []byte{10, 20}, dim: 2, channels: 1},
		{name: "single pixel", pix: []byte{200}, dim: 1, channels: 1},
		{name: "single rgba pixel", pix: []byte{1, 2, 3, 4}, dim: 1, channels: 4},
		{name: "empty", pix: nil, dim: 0, channels: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scrambler := scramble.Scrambler{Key: 42}

			encrypted, err := scrambler.Encrypt(tc.pix, tc.dim, tc.channels)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}

			if len(encrypted) != len(tc.pix) {
				t.Fatalf("Encrypt returned %d bytes, want %d", len(encrypted), len(tc.pix))
			}

			decrypted, err := scrambler.Decrypt(encrypted, tc.dim, tc.channels)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}

			if !bytes.Equal(decrypted, tc.pix) {
				t.Errorf("Decrypt = %v, want %v", decrypted, tc.pix)
			}
		})
	}
}

func TestEncryptTwoGrayPixels(t *testing.T) {
	t.Parallel()

	pix := []byte{10, 20}
	scrambler := scramble.Scrambler{Key: 42}

	first, err := scrambler.Encrypt(pix, 2, 1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	second, err := scrambler.Encrypt(pix, 2, 1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("repeated runs disagree: %v vs %v", first, second)
	}

	restored, err := scrambler.Decrypt(first, 2, 1)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(restored, pix) {
		t.Errorf("Decrypt = %v, want %v", restored, pix)
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pix      []byte
		dim      int
		channels int
		want     error
	}{
		{name: "zero channels", pix: []byte{1}, dim: 1, channels: 0, want: scramble.ErrChannels},
		{name: "five channels", pix: pattern(5), dim: 1, channels: 5, want: scramble.ErrChannels},
		{name: "short buffer", pix: pattern(5), dim: 2, channels: 3, want: scramble.ErrBufferSize},
		{name: "long buffer", pix: pattern(7), dim: 2, channels: 3, want: scramble.ErrBufferSize},
		{name: "negative dim", pix: nil, dim: -1, channels: 1, want: scramble.ErrBufferSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scrambler := scramble.Scrambler{Key: 1}

			if _, err := scrambler.Encrypt(tc.pix, tc.dim, tc.channels); !errors.Is(err, tc.want) {
				t.Errorf("Encrypt = %v, want %v", err, tc.want)
			}

			if _, err := scrambler.Decrypt(tc.pix, tc.dim, tc.channels); !errors.Is(err, tc.want) {
				t.Errorf("Decrypt = %v, want %v", err, tc.want)
			}
		})
	}
}

// TestWorkersParity checks the output is independent of the worker
// count, including on buffers large enough to take the chunked path.
func TestWorkersParity(t *testing.T) {
	t.Parallel()

	const dim = 1<<16 + 3

	pix := pattern(dim)

	serial, err := scramble.Scrambler{Key: 5, Workers: 1}.Encrypt(pix, dim, 1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	parallel, err := scramble.Scrambler{Key: 5, Workers: 8}.Encrypt(pix, dim, 1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(serial, parallel) {
		t.Error("worker count changed the output")
	}

	restored, err := scramble.Scrambler{Key: 5, Workers: 8}.Decrypt(parallel, dim, 1)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(restored, pix) {
		t.Error("parallel decrypt did not restore the original")
	}
}

func TestInputNotMutated(t *testing.T) {
	t.Parallel()

	pix := pattern(96)
	original := bytes.Clone(pix)

	if _, err := (scramble.Scrambler{Key: 77}).Encrypt(pix, 24, 4); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(pix, original) {
		t.Error("Encrypt mutated its input")
	}
}
