package model

import (
	"image"
	"math"
)

// BBox is an axis-aligned rectangle in image pixel space. X and Y locate the
// top-left corner; the Y axis grows downward, matching image.Rectangle.
// Coordinates are float64 because stencil boundaries come from interactive
// dragging and are not pixel-aligned.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its top-left corner and dimensions.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// BBoxFromEdges creates a bounding box spanning two opposite corners,
// normalizing them so width and height are non-negative.
func BBoxFromEdges(x0, y0, x1, y1 float64) BBox {
	return BBox{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// IsEmpty returns true if the box has no area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Rect converts the box to an image.Rectangle, rounding each edge to the
// nearest pixel. A degenerate box converts to an empty rectangle.
func (b BBox) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.Left())),
		int(math.Round(b.Top())),
		int(math.Round(b.Right())),
		int(math.Round(b.Bottom())),
	)
}

// ClipTo intersects the box, converted to pixels, with the given rectangle.
// The result is empty (not an error) when the box lies outside bounds; a
// user-dragged stencil boundary may overshoot the image extent by rounding.
func (b BBox) ClipTo(bounds image.Rectangle) image.Rectangle {
	return b.Rect().Intersect(bounds)
}
