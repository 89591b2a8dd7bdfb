//go:build !ocr

package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrOCRNotEnabled is returned when the Tesseract backend is used but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it; this
// requires Tesseract installed on the system.
var ErrOCRNotEnabled = errors.New("ocr: Tesseract support not enabled; rebuild with -tags ocr")

// Tesseract is the stub backend used when the "ocr" build tag is not set.
// All operations return [ErrOCRNotEnabled]. The [Command] backend and any
// custom [Backend] remain fully usable without the tag.
type Tesseract struct {
	language string
	dpi      int
}

// NewTesseract returns an error indicating OCR support is not enabled.
// To enable it, rebuild with: go build -tags ocr
func NewTesseract() (*Tesseract, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage is a no-op for the stub backend.
func (t *Tesseract) SetLanguage(lang string) {}

// SetDPI is a no-op for the stub backend.
func (t *Tesseract) SetDPI(dpi int) {}

// Recognize returns an error indicating OCR support is not enabled.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	return "", ErrOCRNotEnabled
}
