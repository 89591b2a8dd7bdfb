package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strings"

	"github.com/tsawler/gridocr/imaging"
)

// Placeholders substituted into a [Command] template.
const (
	PlaceholderImageIn = "%img_in%"
	PlaceholderTextOut = "%txt_out%"
)

// ErrNoCommand indicates a Command backend was built from an empty template.
var ErrNoCommand = errors.New("ocr: empty command template")

// Command is a backend that shells out to an external OCR program. The
// template is split on whitespace; %img_in% is replaced with the path of a
// temporary PNG holding the cell image, and %txt_out% with an output path
// the program should write recognized text to, minus the ".txt" suffix the
// conventional engines append.
//
// Every Recognize call works in its own temporary files, so concurrent
// calls do not interfere. Temporary files are removed when the call
// returns.
type Command struct {
	template string
	dir      string
}

// NewCommand creates a backend from a command template, e.g.
//
//	ocr.NewCommand("tesseract -l deu %img_in% %txt_out%")
func NewCommand(template string) *Command {
	return &Command{template: template}
}

// TesseractCommand returns a backend invoking the tesseract binary for
// English text. Unlike the gosseract-based [Tesseract] backend, it needs no
// build tag or cgo, only the binary on PATH.
func TesseractCommand() *Command {
	return NewCommand("tesseract -l eng %img_in% %txt_out%")
}

// CuneiformCommand returns a backend invoking the cuneiform binary for
// English text.
func CuneiformCommand() *Command {
	return NewCommand("cuneiform -l eng -f text -o %txt_out%.txt %img_in%")
}

// SetDir sets the directory for temporary image and text files.
// Empty means the system default.
func (c *Command) SetDir(dir string) {
	c.dir = dir
}

// Recognize writes the cell image to a temporary PNG, runs the command, and
// reads back the text file the program produced.
func (c *Command) Recognize(ctx context.Context, img image.Image) (string, error) {
	if strings.TrimSpace(c.template) == "" {
		return "", ErrNoCommand
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	imgFile, err := os.CreateTemp(c.dir, "gridocr-cell-*.png")
	if err != nil {
		return "", fmt.Errorf("ocr: create temp image: %w", err)
	}
	imgPath := imgFile.Name()
	defer os.Remove(imgPath)

	_, err = imgFile.Write(data)
	if cerr := imgFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("ocr: write temp image: %w", err)
	}

	// The engines append ".txt" themselves, so the template receives the
	// bare base path.
	txtBase := strings.TrimSuffix(imgPath, ".png") + "-out"
	txtPath := txtBase + ".txt"
	defer os.Remove(txtPath)

	argv := strings.Fields(strings.NewReplacer(
		PlaceholderImageIn, imgPath,
		PlaceholderTextOut, txtBase,
	).Replace(c.template))
	if len(argv) == 0 {
		return "", ErrNoCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ocr: %s: %w", argv[0], err)
	}

	out, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("ocr: read %s output: %w", argv[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}
