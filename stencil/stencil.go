package stencil

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/gridocr/model"
)

// ErrInvalidStencil indicates malformed boundary positions: not strictly
// increasing, or too few to define a single row or column where one is
// required.
var ErrInvalidStencil = errors.New("stencil: invalid boundary positions")

// Stencil is a user-defined grid overlaid on a table image: N+1 row
// boundaries defining N rows, and M+1 column boundaries defining M columns.
// Positions are in image pixel space (row bounds along the vertical axis,
// top to bottom; column bounds along the horizontal axis, left to right)
// and must be strictly increasing.
//
// A Stencil is typically owned and mutated by an interactive editor; an
// extraction run operates on an immutable [Stencil.Clone] snapshot and never
// mutates it.
type Stencil struct {
	RowBounds []float64
	ColBounds []float64
}

// New creates a stencil from row and column boundary positions.
// The slices are copied.
func New(rowBounds, colBounds []float64) *Stencil {
	s := &Stencil{
		RowBounds: make([]float64, len(rowBounds)),
		ColBounds: make([]float64, len(colBounds)),
	}
	copy(s.RowBounds, rowBounds)
	copy(s.ColBounds, colBounds)
	return s
}

// Clone returns a deep copy, suitable as a read-only snapshot for an
// extraction run while an editor keeps mutating the original.
func (s *Stencil) Clone() *Stencil {
	return New(s.RowBounds, s.ColBounds)
}

// Rows returns the number of rows the stencil defines. Fewer than two row
// boundaries define zero rows.
func (s *Stencil) Rows() int {
	if len(s.RowBounds) < 2 {
		return 0
	}
	return len(s.RowBounds) - 1
}

// Cols returns the number of columns the stencil defines.
func (s *Stencil) Cols() int {
	if len(s.ColBounds) < 2 {
		return 0
	}
	return len(s.ColBounds) - 1
}

// Normalize sorts both boundary sequences in ascending order. An interactive
// editor appends separators in click order, so a stencil fresh from editing
// is not necessarily sorted. Normalize does not remove duplicates; equal
// boundaries still fail Validate.
func (s *Stencil) Normalize() {
	sort.Float64s(s.RowBounds)
	sort.Float64s(s.ColBounds)
}

// Validate checks that both boundary sequences are strictly increasing.
// It returns an error wrapping [ErrInvalidStencil] on the first violation,
// and nil for sequences shorter than two (those define zero rows or columns,
// which is an empty grid, not a malformed one).
func (s *Stencil) Validate() error {
	if err := validateBounds(s.RowBounds, "row"); err != nil {
		return err
	}
	return validateBounds(s.ColBounds, "column")
}

func validateBounds(bounds []float64, axis string) error {
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return fmt.Errorf("%w: %s bounds not strictly increasing at index %d (%v >= %v)",
				ErrInvalidStencil, axis, i, bounds[i-1], bounds[i])
		}
	}
	return nil
}

// CellRect returns the rectangle of cell (row, col):
// horizontally ColBounds[col]..ColBounds[col+1], vertically
// RowBounds[row]..RowBounds[row+1]. Indices must be in range.
func (s *Stencil) CellRect(row, col int) model.BBox {
	return model.BBoxFromEdges(
		s.ColBounds[col], s.RowBounds[row],
		s.ColBounds[col+1], s.RowBounds[row+1],
	)
}

// Cell pairs a grid position with its derived rectangle.
type Cell struct {
	Pos  model.Position
	Rect model.BBox
}

// CellRects derives every cell rectangle in row-major order (row index
// varying slowest), exactly Rows()*Cols() of them. It fails with an error
// wrapping [ErrInvalidStencil] if either boundary sequence is shorter than
// two or not strictly increasing.
func (s *Stencil) CellRects() ([]Cell, error) {
	if len(s.RowBounds) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 row bounds, have %d",
			ErrInvalidStencil, len(s.RowBounds))
	}
	if len(s.ColBounds) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 column bounds, have %d",
			ErrInvalidStencil, len(s.ColBounds))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, s.Rows()*s.Cols())
	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			cells = append(cells, Cell{
				Pos:  model.Position{Row: i, Col: j},
				Rect: s.CellRect(i, j),
			})
		}
	}
	return cells, nil
}
