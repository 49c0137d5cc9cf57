package scramble

import "errors"

var (
	// ErrChannels is returned when the channel count falls outside the 1 to 4 byte-lane range.
	ErrChannels = errors.New("unsupported channel count")
	// ErrBufferSize is returned when the pixel buffer length does not equal dim times channels.
	ErrBufferSize = errors.New("pixel buffer length does not match dimensions")
	// ErrPermutation is returned when a permutation entry points outside the pixel range.
	ErrPermutation = errors.New("permutation index out of range")
)
