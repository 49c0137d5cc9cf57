package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// jpegQuality pins the JPEG encoder to its maximum setting. The
// default quality would stack a second round of lossy compression on
// top of the scrambled pixels.
const jpegQuality = 100

// Encode writes img to w in its source format. Formats without an
// encoder, such as webp, are rejected.
func Encode(w io.Writer, img *Image) error {
	if want := img.Dim() * img.Channels(); len(img.Pix) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d %s", ErrPixelBuffer, len(img.Pix), img.Width, img.Height, img.Model)
	}

	native := img.native()

	var err error

	switch img.Format {
	case "png":
		err = png.Encode(w, native)
	case "jpeg":
		err = jpeg.Encode(w, native, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(w, native, nil)
	case "bmp":
		err = bmp.Encode(w, native)
	case "tiff":
		err = tiff.Encode(w, native, nil)
	default:
		return fmt.Errorf("%w: no encoder for %q", ErrEncode, img.Format)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return nil
}

// native reassembles the flat buffer into the stdlib image type the
// encoders consume. The buffer is shared, not copied.
func (img *Image) native() image.Image {
	rect := image.Rect(0, 0, img.Width, img.Height)

	if img.Model == Gray {
		return &image.Gray{Pix: img.Pix, Stride: img.Width, Rect: rect}
	}

	return &image.NRGBA{Pix: img.Pix, Stride: 4 * img.Width, Rect: rect}
}
