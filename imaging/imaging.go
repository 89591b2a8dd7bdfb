// Package imaging crops and prepares cell images for OCR.
//
// [Crop] cuts one stencil cell out of the source image, clipping to the
// image extent first; a rectangle that falls entirely outside yields a
// zero-area image, not an error. [Scale] upsamples small cells before
// recognition, which markedly improves OCR on tables rendered at low
// resolution. [EncodePNG] produces the byte form OCR engines consume.
//
// All functions treat the source image as read-only, so they are safe to
// call concurrently on the same image from many goroutines.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/tsawler/gridocr/model"
)

// subImager is implemented by the stdlib image types (RGBA, NRGBA, Gray...).
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the portion of img covered by box, clipped to the image
// bounds. The clip is defensive: a user-dragged stencil boundary may
// overshoot the image extent by rounding. When the clipped rectangle is
// degenerate, Crop returns an image with empty bounds; the caller decides
// how to surface that (the extraction pipeline records it as a failed cell).
//
// The returned image shares pixels with img when img supports sub-imaging;
// otherwise the region is copied. Either way the source is never written.
func Crop(img image.Image, box model.BBox) image.Image {
	rect := box.ClipTo(img.Bounds())
	if rect.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}

	if si, ok := img.(subImager); ok {
		return si.SubImage(rect)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, img, rect, draw.Src, nil)
	return dst
}

// Scale resizes img by factor using Catmull-Rom interpolation. A factor of
// 1 (or less than or equal to 0) returns img unchanged, as does an empty
// image. Upscaling by 2-3x is a common preparation step for OCR on cells
// only a few text lines tall.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	if b.Empty() {
		return img
	}

	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodePNG encodes img as PNG bytes, the interchange form expected by OCR
// engines. Encoding an image with empty bounds is an error.
func EncodePNG(img image.Image) ([]byte, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("imaging: cannot encode empty image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imaging: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
