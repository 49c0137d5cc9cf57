// Package logic implements the image transformation pipeline behind the commands.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/internal/fileutil"
	"github.com/idelchi/goscram/internal/imaging"
	"github.com/idelchi/goscram/internal/scramble"
	"github.com/idelchi/goscram/pkg/keyseed"
)

// Run loads the configured image, applies the keyed transformation in
// the requested direction, and writes the result atomically.
func Run(cfg *config.Config, logger hclog.Logger) error {
	start := time.Now()

	key, err := resolveKey(cfg)
	if err != nil {
		return fmt.Errorf("resolving key: %w", err)
	}

	img, err := imaging.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	logger.Debug("loaded image",
		"format", img.Format,
		"width", img.Width,
		"height", img.Height,
		"model", img.Model.String(),
	)

	scrambler := scramble.Scrambler{Key: key, Workers: cfg.Parallel}

	logger.Debug("transforming pixels", "decrypt", cfg.Decrypt, "workers", cfg.Parallel)

	if cfg.Decrypt {
		img.Pix, err = scrambler.Decrypt(img.Pix, img.Dim(), img.Channels())
	} else {
		img.Pix, err = scrambler.Encrypt(img.Pix, img.Dim(), img.Channels())
	}

	if err != nil {
		return fmt.Errorf("transforming pixels: %w", err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = cfg.Input
	}

	size, err := writeImage(cfg.Input, outPath, img, cfg.PreserveTimestamps)
	if err != nil {
		return err
	}

	logger.Debug("wrote image", "path", outPath, "bytes", size)

	if !cfg.Quiet {
		fmt.Printf("Processed %q -> %q\n", cfg.Input, outPath) //nolint:forbidigo
	}

	if cfg.Stats {
		printStats(img, size, time.Since(start))
	}

	return nil
}

// resolveKey turns whichever key source the configuration carries into
// the engine seed. A passphrase read from the prompt arrives here as
// cfg.Passphrase.
func resolveKey(cfg *config.Config) (uint64, error) {
	switch {
	case cfg.Key != "":
		return keyseed.FromString(cfg.Key)
	case cfg.KeyFile != "":
		return keyseed.FromFile(cfg.KeyFile)
	case cfg.Passphrase != "":
		return keyseed.FromPassphrase(cfg.Passphrase)
	}

	return 0, keyseed.ErrEmpty
}

// writeImage encodes the image to a temp file and atomically renames
// it to outPath, carrying over the source file's permissions.
func writeImage(srcPath, outPath string, img *imaging.Image, preserveTimestamps bool) (size int64, err error) {
	tc, err := fileutil.NewTempContext(srcPath, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if err := imaging.Encode(tc.TmpFile, img); err != nil {
		return 0, err
	}

	if err := os.Chmod(tc.TmpName, tc.SrcInfo.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	size, err = fileutil.FinalizeOutput(outPath, preserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

func printStats(img *imaging.Image, outSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Dimensions: %dx%d\n", img.Width, img.Height)
	fmt.Fprintf(os.Stderr, "  Pixels:     %s\n", humanize.Comma(int64(img.Dim())))
	fmt.Fprintf(os.Stderr, "  Model:      %s\n", img.Model)
	//nolint:gosec // outSize is always non-negative (stat of the written file)
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", humanize.IBytes(uint64(max(0, outSize))))
	fmt.Fprintf(os.Stderr, "  Duration:   %s\n", duration.Round(time.Millisecond))
}
