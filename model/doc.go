// Package model provides the output representation for extracted tables.
//
// The [Table] type is the result of one extraction run: a row-major matrix
// of [Cell] values whose shape matches the stencil the run was made with.
// Each cell holds either recognized text or the error that made recognition
// fail; one cell's failure never discards the rest of the table, so both
// kinds can appear in the same result.
//
// Rendering a failed cell is a presentation decision. The export methods
// (Strings, ToCSV, ToMarkdown) take an explicit marker string; pass "" to
// leave failed cells blank.
//
// # Geometry
//
// [BBox] is a float64 rectangle in image pixel space (top-left origin,
// Y growing downward). It exists because stencil boundaries come from
// interactive dragging and are not pixel-aligned; ClipTo converts to a
// pixel image.Rectangle clamped to the source image.
package model
