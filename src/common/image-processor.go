package common

// Image I/O shared by the favicon generator and the collection optimizer
//
// Responsibilities:
// 1. Decode any supported raster (PNG, JPEG, GIF, BMP, TIFF, WebP) into NRGBA
// 2. Resample with a single filter so both tools agree on quality
// 3. Save by filename extension:
//    - PNG/JPEG/GIF/TIFF/BMP via imaging
//    - .ico via go-ico (one or more frames)
//    - .webp via libwebp (lossy, quality + effort)

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/webp" // register WebP sources for image.Decode
)

// Filter is the resampling filter used for every resize.
var Filter = imaging.Lanczos

// ErrUnsupportedFormat is returned when an output extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WebPOptions controls lossy WebP encoding
type WebPOptions struct {
	Quality float32 // 0-100
	Method  int     // 0 (fast) - 6 (slowest, smallest)
}

// Open reads and decodes an image file, normalizing it to 4-channel NRGBA.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Clone(img), nil
}

// Resize scales img to exactly width x height.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, Filter)
}

// Save writes img to path, choosing the encoder from the extension.
// WebP is not handled here since it needs quality settings; see SaveWebP.
func Save(img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		return SaveICO([]image.Image{img}, path)
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// SaveICO writes frames into a single ICO container, in order.
// The first frame is the primary image.
func SaveICO(frames []image.Image, path string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames for %s", path)
	}
	return writeFile(path, func(w io.Writer) error {
		return ico.EncodeAll(w, frames)
	})
}

// SaveWebP encodes img as lossy WebP.
func SaveWebP(img image.Image, path string, opts WebPOptions) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeWebP(w, img, opts)
	})
}

// EncodeWebP writes img to w as lossy WebP.
func EncodeWebP(w io.Writer, img image.Image, opts WebPOptions) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, opts.Quality)
	if err != nil {
		return fmt.Errorf("failed to create webp options: %w", err)
	}
	options.Method = opts.Method

	if err := webp.Encode(w, img, options); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}

// ReplaceExt returns the base name of path with its extension swapped for ext.
func ReplaceExt(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
