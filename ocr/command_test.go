package ocr

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testCellImage creates a small white image standing in for a cell crop.
func testCellImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// fakeOCRScript writes a shell script that behaves like an OCR engine:
// it receives an image path and an output base path, and writes fixed text
// to base + ".txt".
func fakeOCRScript(t *testing.T, text string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-ocr.sh")
	script := "#!/bin/sh\nprintf '%s\\n' \"" + text + "\" > \"$2.txt\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Writing fixture script failed: %v", err)
	}
	return path
}

func TestCommandRecognize(t *testing.T) {
	script := fakeOCRScript(t, "recognized text")
	backend := NewCommand(script + " %img_in% %txt_out%")

	got, err := backend.Recognize(context.Background(), testCellImage())
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if got != "recognized text" {
		t.Errorf("Recognize = %q, want %q", got, "recognized text")
	}
}

func TestCommandEmptyTemplate(t *testing.T) {
	backend := NewCommand("   ")
	_, err := backend.Recognize(context.Background(), testCellImage())
	if err != ErrNoCommand {
		t.Errorf("Expected ErrNoCommand, got %v", err)
	}
}

func TestCommandMissingBinary(t *testing.T) {
	backend := NewCommand("definitely-not-an-ocr-engine %img_in% %txt_out%")
	_, err := backend.Recognize(context.Background(), testCellImage())
	if err == nil {
		t.Error("Expected error for missing binary")
	}
}

func TestCommandCancelled(t *testing.T) {
	script := fakeOCRScript(t, "never read")
	backend := NewCommand(script + " %img_in% %txt_out%")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backend.Recognize(ctx, testCellImage())
	if err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestCommandCleansUpTempFiles(t *testing.T) {
	dir := t.TempDir()
	script := fakeOCRScript(t, "text")
	backend := NewCommand(script + " %img_in% %txt_out%")
	backend.SetDir(dir)

	if _, err := backend.Recognize(context.Background(), testCellImage()); err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected temp dir to be empty after run, found %d entries", len(entries))
	}
}

func TestCommandPresets(t *testing.T) {
	if TesseractCommand().template == "" {
		t.Error("TesseractCommand should carry a template")
	}
	if CuneiformCommand().template == "" {
		t.Error("CuneiformCommand should carry a template")
	}
}
