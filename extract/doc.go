// Package extract runs the stencil-driven extraction pipeline: it
// partitions a table image into cells along a user-supplied grid, fans the
// cells out to an OCR backend concurrently, and fans the results back into
// an ordered table.
//
// # Pipeline
//
// [Run] performs one extraction:
//
//  1. Validate the stencil; malformed bounds fail before any pixel work.
//  2. Derive the cell rectangles (row-major); zero cells means an empty
//     table and an immediate return.
//  3. Crop each cell from the image, clipped to the image extent.
//  4. Dispatch all cells to the backend over a bounded worker pool, one
//     invocation per cell, with no ordering between cells.
//  5. Collect results as they complete. A failing cell is recorded and the
//     run continues: extraction is partial-failure tolerant, never
//     all-or-nothing.
//  6. Assemble the N by M table, placing each result by its (row, col)
//     position regardless of completion order.
//
// The call blocks until every cell has resolved, but does its cell-level
// work in parallel internally. Cancelling the context abandons the run;
// runs share no mutable state, so an abandoned run cannot corrupt a
// concurrent or later one.
//
// # Failure handling
//
// Structural problems (malformed stencil, nil inputs) surface
// synchronously as errors from Run. Per-cell recognition failures are
// folded into the table as failed cells ([model.Cell.Failed]); one bad
// cell never loses the rest of the table. [ErrIncompleteResults] is an
// internal consistency check and indicates a bug, not bad data.
//
// There is no retry: a failed cell stays failed for that run. Extraction
// is idempotent for deterministic backends, so callers wanting retries can
// simply run again.
package extract
