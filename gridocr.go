// Package gridocr provides a fluent API for extracting tabular text from a
// raster image of a table, using a user-supplied stencil of row and column
// boundaries to partition the image into cells.
//
// Basic usage:
//
//	st := stencil.New([]float64{0, 40, 80}, []float64{0, 120, 260, 400})
//	backend := ocr.TesseractCommand()
//	table, err := gridocr.From(img).Stencil(st).Backend(backend).Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(table.ToCSV(""))
//
// With options:
//
//	table, err := gridocr.From(img).
//	    Grid([]float64{0, 40, 80}, []float64{0, 120, 260, 400}).
//	    Backend(backend).
//	    Workers(8).
//	    Scale(2).
//	    Extract(ctx)
//
// For callers needing more control, the lower-level extract package is the
// same entry point without the fluent wrapper.
package gridocr

import (
	"context"
	"image"

	"github.com/tsawler/gridocr/extract"
	"github.com/tsawler/gridocr/model"
	"github.com/tsawler/gridocr/ocr"
	"github.com/tsawler/gridocr/stencil"
)

// Runner accumulates the inputs and options for one extraction run. Each
// configuration method returns a new Runner, making chains safe to reuse
// and share across goroutines.
type Runner struct {
	img     image.Image
	st      *stencil.Stencil
	backend ocr.Backend
	opts    extract.Options
}

// From starts a runner for the given source image.
func From(img image.Image) *Runner {
	return &Runner{
		img:  img,
		opts: extract.DefaultOptions(),
	}
}

// clone creates a copy of the Runner so each chain method returns a new
// instance. The image, stencil, and backend are shared by reference; all of
// them are read-only to the pipeline.
func (r *Runner) clone() *Runner {
	c := *r
	return &c
}

// Stencil sets the grid to extract with. The runner keeps a snapshot, so
// later edits to st do not affect this chain.
func (r *Runner) Stencil(st *stencil.Stencil) *Runner {
	c := r.clone()
	if st == nil {
		c.st = nil
		return c
	}
	c.st = st.Clone()
	return c
}

// Grid is shorthand for Stencil(stencil.New(rowBounds, colBounds)).
func (r *Runner) Grid(rowBounds, colBounds []float64) *Runner {
	c := r.clone()
	c.st = stencil.New(rowBounds, colBounds)
	return c
}

// Backend sets the OCR backend cells are dispatched to.
func (r *Runner) Backend(b ocr.Backend) *Runner {
	c := r.clone()
	c.backend = b
	return c
}

// Workers bounds the number of cells recognized concurrently.
func (r *Runner) Workers(n int) *Runner {
	c := r.clone()
	c.opts.Workers = n
	return c
}

// Scale upsamples each cell image by the given factor before recognition.
func (r *Runner) Scale(factor float64) *Runner {
	c := r.clone()
	c.opts.Scale = factor
	return c
}

// Clean sets the text cleaning applied to recognized cell text.
// The default is ocr.DefaultCleanOptions.
func (r *Runner) Clean(opts ocr.CleanOptions) *Runner {
	c := r.clone()
	c.opts.Clean = opts
	return c
}

// NoClean disables text cleaning, passing backend output through verbatim.
func (r *Runner) NoClean() *Runner {
	return r.Clean(ocr.CleanOptions{})
}

// Progress sets a callback invoked after each cell resolves.
func (r *Runner) Progress(fn func(done, total int)) *Runner {
	c := r.clone()
	c.opts.Progress = fn
	return c
}

// Extract runs the pipeline and returns the assembled table. It blocks
// until every cell has resolved or ctx is cancelled.
func (r *Runner) Extract(ctx context.Context) (*model.Table, error) {
	return extract.RunWithOptions(ctx, r.img, r.st, r.backend, r.opts)
}

// Must is a helper that wraps a call returning (T, error) and panics if the
// error is non-nil. It is intended for scripts and tests where error
// handling would be cumbersome.
//
// Example:
//
//	table := gridocr.Must(gridocr.From(img).Stencil(st).Backend(b).Extract(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
