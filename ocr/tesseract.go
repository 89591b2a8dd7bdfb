//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/gridocr/imaging"
)

// Tesseract recognizes cell images with the Tesseract engine via gosseract.
// Requires Tesseract to be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Each Recognize call uses a fresh gosseract client, because a shared
// client is not safe across goroutines; this is what lets the pipeline
// invoke the backend concurrently for every cell. Configure with
// SetLanguage/SetDPI before the first Recognize call.
type Tesseract struct {
	language string
	dpi      int
}

// NewTesseract creates a Tesseract-backed OCR backend recognizing English.
func NewTesseract() (*Tesseract, error) {
	return &Tesseract{language: "eng"}, nil
}

// SetLanguage sets the recognition language(s). Multiple languages can be
// specified "+"-separated (e.g. "eng+fra"). Default is "eng".
func (t *Tesseract) SetLanguage(lang string) {
	t.language = lang
}

// SetDPI declares the source image resolution. Cell crops carry no DPI
// metadata, so Tesseract guesses unless told; 300 is a sensible value for
// scanned tables. Zero leaves the engine default.
func (t *Tesseract) SetDPI(dpi int) {
	t.dpi = dpi
}

// Recognize performs OCR on one cell image. The returned text has leading
// and trailing whitespace trimmed.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("ocr: set language: %w", err)
	}
	// Cells hold a single block of text; telling Tesseract so avoids
	// spurious page layout analysis on tiny crops.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("ocr: set page segmentation mode: %w", err)
	}
	if t.dpi > 0 {
		if err := client.SetVariable("user_defined_dpi", fmt.Sprint(t.dpi)); err != nil {
			return "", fmt.Errorf("ocr: set dpi: %w", err)
		}
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("ocr: set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognition failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
