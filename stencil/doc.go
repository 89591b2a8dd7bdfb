// Package stencil provides the grid model for stencil-driven table
// extraction: ordered row and column boundary positions that partition a
// table image into rectangular cells.
//
// A [Stencil] with N+1 row bounds and M+1 column bounds defines an N by M
// grid. [Stencil.CellRects] derives the cell rectangles in row-major order;
// each cell is addressed by its (row, col) position and spans the image
// region between consecutive boundaries on each axis.
//
// Boundary positions must be strictly increasing ([Stencil.Validate],
// [ErrInvalidStencil]). Interactive editors that insert separators out of
// order can call [Stencil.Normalize] first. Boundaries are not required to
// lie inside the image: extraction clips each cell rectangle to the image
// extent, so a boundary dragged slightly past the edge degrades gracefully
// rather than failing the run.
//
// The stencil itself never touches pixels; it is pure coordinate
// arithmetic, shared between the extraction pipeline and any editor UI.
package stencil
