// Package imaging decodes images into flat interleaved pixel buffers
// and encodes them back. Decoding sniffs the format from the leading
// bytes and normalizes every picture to either grayscale or NRGBA, the
// two layouts the scrambling engine works on. Encoding writes the
// source format back out, with JPEG pinned to maximum quality so the
// scrambled pixels survive the round trip as closely as possible.
package imaging
