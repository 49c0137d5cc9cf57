package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/gabriel-vasile/mimetype"

	// Register the decoders consulted by image.Decode. The format is
	// sniffed from content, never from the file extension.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return img, nil
}

// Decode sniffs the image format from the leading bytes of data and
// decodes into a normalized Image.
func Decode(data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		// Tell the caller what the bytes actually look like.
		return nil, fmt.Errorf("%w (input detected as %s)", ErrUnknownFormat, mimetype.Detect(data))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	model, pix := normalize(src)

	return &Image{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Model:  model,
		Pix:    pix,
	}, nil
}

// normalize flattens the decoded picture into an interleaved buffer.
// Grayscale sources keep their single channel, everything else becomes
// non-premultiplied RGBA. The fast paths copy rows directly and skip
// the per-pixel color conversion.
func normalize(src image.Image) (Model, []byte) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if gray, ok := src.(*image.Gray); ok {
		pix := make([]byte, width*height)

		for y := 0; y < height; y++ {
			offset := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*width:(y+1)*width], gray.Pix[offset:offset+width])
		}

		return Gray, pix
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		pix := make([]byte, width*height*4)

		for y := 0; y < height; y++ {
			offset := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*width*4:(y+1)*width*4], nrgba.Pix[offset:offset+width*4])
		}

		return NRGBA, pix
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	return NRGBA, dst.Pix
}
