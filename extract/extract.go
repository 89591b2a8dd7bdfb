package extract

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/tsawler/gridocr/imaging"
	"github.com/tsawler/gridocr/model"
	"github.com/tsawler/gridocr/ocr"
	"github.com/tsawler/gridocr/stencil"
)

var (
	// ErrNoImage indicates Run was called without a source image.
	ErrNoImage = errors.New("extract: nil source image")

	// ErrNoStencil indicates Run was called without a stencil.
	ErrNoStencil = errors.New("extract: nil stencil")

	// ErrNoBackend indicates Run was called without an OCR backend.
	ErrNoBackend = errors.New("extract: nil OCR backend")

	// ErrEmptyCell marks a cell whose rectangle, clipped to the image
	// extent, has no area. It appears as a cell-level failure in the
	// table, never as a run-level error.
	ErrEmptyCell = errors.New("extract: cell region is empty after clipping")

	// ErrIncompleteResults indicates a dispatched cell never produced a
	// result. It signals a pipeline bug, not a data problem, and is fatal
	// to the run.
	ErrIncompleteResults = errors.New("extract: missing cell result")
)

// Options configures an extraction run.
type Options struct {
	// Workers bounds the number of cells recognized concurrently.
	// Zero or negative means runtime.NumCPU().
	Workers int

	// Scale upsamples each cell image by this factor before recognition.
	// Zero or one means no scaling. 2-3 helps OCR on low-resolution
	// tables.
	Scale float64

	// Clean post-processes recognized text. The zero value leaves text
	// untouched.
	Clean ocr.CleanOptions

	// Progress, if non-nil, is called after each cell resolves with the
	// number of resolved cells and the total. It is called from the
	// goroutine running the extraction, never concurrently with itself.
	Progress func(done, total int)
}

// DefaultOptions returns the options Run uses: NumCPU workers, no scaling,
// full text cleaning.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Clean:   ocr.DefaultCleanOptions(),
	}
}

// Run extracts a table from img using the grid defined by st, recognizing
// every cell with backend. See [RunWithOptions].
func Run(ctx context.Context, img image.Image, st *stencil.Stencil, backend ocr.Backend) (*model.Table, error) {
	return RunWithOptions(ctx, img, st, backend, DefaultOptions())
}

// RunWithOptions extracts a table from img using the grid defined by st.
//
// The stencil is validated eagerly: malformed bounds fail here, before any
// pixel work, with an error wrapping stencil.ErrInvalidStencil. A stencil
// defining zero rows or columns yields an empty table immediately, without
// invoking the backend.
//
// Every cell is cropped from img and dispatched to backend concurrently;
// a cell whose recognition fails is recorded as a failed cell in the
// result, and never aborts or delays the other cells. The call blocks
// until all cells have resolved (or ctx is cancelled, which abandons the
// run and returns ctx.Err). Runs share no state: the same image and
// stencil can be extracted concurrently from multiple goroutines.
func RunWithOptions(ctx context.Context, img image.Image, st *stencil.Stencil, backend ocr.Backend, opts Options) (*model.Table, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if st == nil {
		return nil, ErrNoStencil
	}
	if backend == nil {
		return nil, ErrNoBackend
	}

	// Snapshot first: the caller's stencil may be live editor state.
	snap := st.Clone()
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	rows, cols := snap.Rows(), snap.Cols()
	if rows == 0 || cols == 0 {
		return model.NewTable(rows, cols), nil
	}

	cells, err := snap.CellRects()
	if err != nil {
		return nil, err
	}

	results := dispatch(ctx, img, cells, backend, opts)

	resolved := make(map[model.Position]cellResult, len(cells))
	for res := range results {
		resolved[res.pos] = res
		if opts.Progress != nil {
			opts.Progress(len(resolved), len(cells))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return assemble(rows, cols, resolved)
}

// cellResult is the outcome of recognizing one cell: text, or a failure
// local to that cell.
type cellResult struct {
	pos  model.Position
	text string
	err  error
}

// dispatch fans the cells out to a bounded pool of workers and returns the
// channel their results fan in on. The channel is closed once every
// dispatched cell has resolved. On cancellation, undispatched cells are
// dropped and the channel still closes.
func dispatch(ctx context.Context, img image.Image, cells []stencil.Cell, backend ocr.Backend, opts Options) <-chan cellResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(cells) {
		workers = len(cells)
	}

	jobs := make(chan stencil.Cell)
	results := make(chan cellResult, len(cells))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cell := range jobs {
				results <- resolve(ctx, img, cell, backend, opts)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, cell := range cells {
			select {
			case jobs <- cell:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// resolve crops, prepares, and recognizes a single cell. The source image
// is only read, so any number of resolves may run concurrently.
func resolve(ctx context.Context, img image.Image, cell stencil.Cell, backend ocr.Backend, opts Options) cellResult {
	cropped := imaging.Crop(img, cell.Rect)
	if cropped.Bounds().Empty() {
		// A boundary dragged fully outside the image. Not worth a
		// backend call; surface it as a failed cell.
		return cellResult{pos: cell.Pos, err: ErrEmptyCell}
	}
	cropped = imaging.Scale(cropped, opts.Scale)

	text, err := backend.Recognize(ctx, cropped)
	if err != nil {
		return cellResult{pos: cell.Pos, err: fmt.Errorf("cell (%d,%d): %w", cell.Pos.Row, cell.Pos.Col, err)}
	}
	return cellResult{pos: cell.Pos, text: opts.Clean.Clean(text)}
}

// assemble places one result per (row, col) pair into a rows-by-cols table.
// A missing pair fails with ErrIncompleteResults; the pipeline dispatches
// exactly one unit of work per cell, so a gap here is an internal
// consistency fault.
func assemble(rows, cols int, resolved map[model.Position]cellResult) (*model.Table, error) {
	table := model.NewTable(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res, ok := resolved[model.Position{Row: i, Col: j}]
			if !ok {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrIncompleteResults, i, j)
			}
			table.Rows[i][j] = model.Cell{Text: res.text, Err: res.err}
		}
	}
	return table, nil
}
