package imaging

import "errors"

var (
	// ErrUnknownFormat is returned when the input matches no registered image format.
	ErrUnknownFormat = errors.New("unrecognized image format")
	// ErrDecode is returned when the format is recognized but the data is malformed.
	ErrDecode = errors.New("decoding image")
	// ErrEncode is returned when the image cannot be written back out.
	ErrEncode = errors.New("encoding image")
	// ErrPixelBuffer is returned when the pixel buffer length does not match the image geometry.
	ErrPixelBuffer = errors.New("pixel buffer length does not match image dimensions")
)
