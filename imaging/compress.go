/*
Package imaging compresses uploaded receipt photos before persistence.

PURPOSE:
  Phone-camera photos are large. Bounding dimensions and re-encoding at a
  fixed quality keeps upload/storage costs predictable without hurting the
  legibility of a receipt.

SUPPORTED INPUTS:
  JPEG, PNG and WebP (decode registered via golang.org/x/image/webp).
  Output is always JPEG.
*/
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/png" // register decoder

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// DefaultMaxDimension bounds the longer image side after downsampling.
	DefaultMaxDimension = 1920

	// DefaultQuality is the JPEG re-encode quality.
	DefaultQuality = 85
)

var (
	// ErrDecode is returned when the input cannot be decoded as an image.
	ErrDecode = errors.New("cannot decode receipt image")

	// ErrEncode is returned when re-encoding fails.
	ErrEncode = errors.New("cannot encode receipt image")
)

// Options control compression. Zero values fall back to the defaults.
type Options struct {
	MaxDimension int
	Quality      int
}

func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = DefaultMaxDimension
	}
	if o.Quality <= 0 {
		o.Quality = DefaultQuality
	}
	return o
}

// CompressReceipt decodes the image from r, proportionally downsamples it so
// neither dimension exceeds opts.MaxDimension, and re-encodes it as JPEG.
// The input is never mutated; the result is a new in-memory file.
func CompressReceipt(r io.Reader, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	out := img
	if width > opts.MaxDimension || height > opts.MaxDimension {
		targetW, targetH := fit(width, height, opts.MaxDimension)
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// fit scales (w, h) down so the longer side equals maxDim, preserving the
// aspect ratio. Both results are at least 1.
func fit(w, h, maxDim int) (int, int) {
	if w >= h {
		scaled := h * maxDim / w
		if scaled < 1 {
			scaled = 1
		}
		return maxDim, scaled
	}
	scaled := w * maxDim / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, maxDim
}
