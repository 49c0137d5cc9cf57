package imaging

// Model identifies how decoded pixels are laid out in an Image's flat
// buffer. Every decoded picture is normalized to one of these.
type Model uint8

const (
	// Gray stores one luma byte per pixel.
	Gray Model = iota
	// NRGBA stores four bytes per pixel, non-premultiplied.
	NRGBA
)

// Channels returns the number of bytes a pixel of this model occupies.
func (m Model) Channels() int {
	if m == Gray {
		return 1
	}

	return 4
}

func (m Model) String() string {
	switch m {
	case Gray:
		return "gray"
	case NRGBA:
		return "nrgba"
	default:
		return "unknown"
	}
}

// Image is a decoded picture: the raw interleaved pixel bytes plus the
// metadata needed to re-encode it. Pix is row-major with
// len(Pix) == Width*Height*Model.Channels().
type Image struct {
	// Format is the sniffed registry name of the source format, such as "png" or "jpeg".
	Format string
	// Width and Height are the pixel dimensions.
	Width  int
	Height int
	// Model describes the channel layout of Pix.
	Model Model
	// Pix holds the interleaved channel bytes.
	Pix []byte
}

// Dim returns the total pixel count.
func (img *Image) Dim() int {
	return img.Width * img.Height
}

// Channels returns the bytes per pixel.
func (img *Image) Channels() int {
	return img.Model.Channels()
}
