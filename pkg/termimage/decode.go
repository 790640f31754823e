// ABOUTME: Image decoding for overlay content and stream frames
// ABOUTME: Registers PNG, JPEG, GIF, WebP, and BMP; rejects oversized canvases before decoding

package termimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxPixels bounds the canvas size accepted by Decode.
const MaxPixels = 40_000_000

// ErrTooLarge is returned for images whose canvas exceeds MaxPixels.
var ErrTooLarge = errors.New("image too large")

// Dimensions holds the width and height of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Probe reads the image header and returns its dimensions and format name.
func Probe(data []byte) (Dimensions, string, error) {
	if len(data) == 0 {
		return Dimensions{}, "", fmt.Errorf("empty image data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, "", fmt.Errorf("reading image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, format, nil
}

// Decode decodes data after checking its header dimensions.
func Decode(data []byte) (image.Image, error) {
	dim, _, err := Probe(data)
	if err != nil {
		return nil, err
	}
	if dim.Width*dim.Height > MaxPixels {
		return nil, fmt.Errorf("%dx%d: %w", dim.Width, dim.Height, ErrTooLarge)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
