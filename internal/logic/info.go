package logic

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/internal/imaging"
)

// RunInfo prints the metadata of the configured image without touching
// its pixels: the sniffed format, geometry, and the channel layout the
// engine would operate on.
//
//nolint:forbidigo // metadata report prints to stdout
func RunInfo(cfg *config.Config) error {
	data, err := os.ReadFile(cfg.Input) //nolint:gosec
	if err != nil {
		return fmt.Errorf("reading %q: %w", cfg.Input, err)
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return fmt.Errorf("%q: %w", cfg.Input, err)
	}

	fmt.Printf("File:       %s\n", cfg.Input)
	fmt.Printf("Format:     %s\n", img.Format)
	fmt.Printf("Dimensions: %dx%d\n", img.Width, img.Height)
	fmt.Printf("Pixels:     %s\n", humanize.Comma(int64(img.Dim())))
	fmt.Printf("Model:      %s (%d channels)\n", img.Model, img.Channels())
	fmt.Printf("Raw size:   %s\n", humanize.IBytes(uint64(len(img.Pix))))
	fmt.Printf("File size:  %s\n", humanize.IBytes(uint64(len(data))))

	return nil
}
