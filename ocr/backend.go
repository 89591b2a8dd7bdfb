// Package ocr defines the pluggable recognition capability used by the
// extraction pipeline, and provides two implementations: a Tesseract
// backend via gosseract (build tag "ocr") and an external-command backend
// that shells out to any OCR program.
//
// A [Backend] converts one cell image into text, independently of all
// other cells. Implementations must tolerate unsynchronized concurrent
// calls: the pipeline fans every cell of a table out in parallel and
// guarantees nothing about call ordering. A backend built on a resource
// that requires serialized access must do its own internal queuing; the
// pipeline stays correct (merely slower) under such a backend.
package ocr

import (
	"context"
	"image"
)

// Backend converts one cell image into recognized text. An error describes
// a failure local to that image (timeout, unreadable region, engine fault);
// the pipeline records it against the cell and continues with the rest of
// the table.
//
// Recognize must be safe for concurrent use: no shared mutable state
// between invocations.
type Backend interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// BackendFunc adapts a function to the [Backend] interface. Handy for tests
// and one-off backends.
type BackendFunc func(ctx context.Context, img image.Image) (string, error)

// Recognize calls f.
func (f BackendFunc) Recognize(ctx context.Context, img image.Image) (string, error) {
	return f(ctx, img)
}
