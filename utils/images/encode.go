package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open decodes single image from file. Registered decoders cover png, jpeg,
// gif, bmp, tiff and webp. Returned format is the name under which decoder was
// registered.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("unable to decode image %q: %w", path, err)
	}
	return img, format, nil
}

// IsCompressedFormat reports whether ext (with or without the leading dot)
// names an image format which is already entropy coded.
func IsCompressedFormat(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png", "jpg", "jpeg", "webp", "gif":
		return true
	}
	return false
}

// SavePNG encodes img to path with best compression, creating parent
// directories as needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create directory for %q: %w", path, err)
	}
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("unable to encode PNG %q: %w", path, err)
	}
	return nil
}

// SaveJPEG encodes img to path with the given quality. Alpha channel is
// dropped - JPEG output is always opaque. JFIF APP0 marker segment with 300
// DPI is inserted when the encoder leaves it out since some viewers refuse
// jpegs without it.
func SaveJPEG(img image.Image, path string, quality int) error {
	data, err := EncodeJPEGWithDPI(img, quality, DpiPxPerInch, 300, 300)
	if err != nil {
		return fmt.Errorf("unable to encode JPEG %q: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create directory for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", path, err)
	}
	return nil
}
