// Package thumbnail renders image derivatives and runs the derivative job workers.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 85

// DefaultMaxPixels caps decoding at roughly 200 MiB of RGBA.
const DefaultMaxPixels int64 = 50_000_000

var (
	// ErrEmptyImage is returned for images without pixels.
	ErrEmptyImage = errors.New("empty image")
	// ErrTooLarge is returned when the image header declares more pixels than allowed.
	ErrTooLarge = errors.New("image too large")
)

// Resize scales src to width keeping the aspect ratio. Height is at least 1.
func Resize(src image.Image, width int) image.Image {
	b := src.Bounds()
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Decode parses raw image bytes and returns the image and its format name.
// The header is checked against maxPixels (DefaultMaxPixels when <= 0)
// before any pixel data is allocated.
func Decode(data []byte, maxPixels int64) (image.Image, string, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", ErrEmptyImage
	}
	if int64(cfg.Width) > maxPixels/int64(cfg.Height) {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, "", ErrEmptyImage
	}
	return img, format, nil
}

// Encode writes img as jpeg when format is "jpeg" and as png otherwise.
func Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if format == "jpeg" {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Render decodes data, resizes it to width and re-encodes it.
func Render(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid width %d", width)
	}
	img, format, err := Decode(data, DefaultMaxPixels)
	if err != nil {
		return nil, err
	}
	return Encode(Resize(img, width), format)
}
