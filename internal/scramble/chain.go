package scramble

// lane extracts byte lane c of a 32-bit keystream word, counting from
// the least significant byte. Channel index doubles as lane selector,
// which is why pixels are capped at four channels.
func lane(word uint32, c int) byte {
	return byte(word >> (8 * c)) //nolint:gosec
}

// chainEncrypt walks the buffer once, deriving each output pixel from
// the previous output pixel, the current input pixel, and the pixel's
// keystream word. The first pixel chains off the init word instead of
// a predecessor. Channels never mix: channel c only ever meets lane c.
func chainEncrypt(pix []byte, channels int, init uint32, keystream []uint32) []byte {
	out := make([]byte, len(pix))
	if len(keystream) == 0 {
		return out
	}

	for c := 0; c < channels; c++ {
		out[c] = lane(init, c) ^ pix[c] ^ lane(keystream[0], c)
	}

	for i := 1; i < len(keystream); i++ {
		prev := (i - 1) * channels
		cur := i * channels

		for c := 0; c < channels; c++ {
			out[cur+c] = out[prev+c] ^ pix[cur+c] ^ lane(keystream[i], c)
		}
	}

	return out
}

// chainDecrypt inverts chainEncrypt. XOR is its own inverse and the
// predecessor pixel comes from the input rather than the output, so
// this is a forward sweep as well.
func chainDecrypt(pix []byte, channels int, init uint32, keystream []uint32) []byte {
	out := make([]byte, len(pix))
	if len(keystream) == 0 {
		return out
	}

	for c := 0; c < channels; c++ {
		out[c] = lane(init, c) ^ pix[c] ^ lane(keystream[0], c)
	}

	for i := 1; i < len(keystream); i++ {
		prev := (i - 1) * channels
		cur := i * channels

		for c := 0; c < channels; c++ {
			out[cur+c] = pix[prev+c] ^ pix[cur+c] ^ lane(keystream[i], c)
		}
	}

	return out
}
