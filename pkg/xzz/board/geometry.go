// Package board defines the in-memory model produced by decoding an XZZPCB
// file: layers, copper traces, vias, arcs, components with pins and
// silkscreen text, and electrical nets.
//
// All coordinates are in a single normalized world unit. The decoder divides
// the file's scaled integer coordinates by CoordinateScale during parsing and
// the assembler recenters the board around the outline centroid, so every
// position held by this package is already in that frame.
package board

// Coordinate conversion constants.
// XZZPCB stores coordinates as integers scaled by 10000, and arc angles as
// integers in ten-thousandths of a degree.
const (
	CoordinateScale = 10000.0 // File integer units per world unit
	AngleScale      = 10000.0 // File integer units per degree
)

// Position represents a 2D coordinate in world units.
type Position struct {
	X float64
	Y float64
}

// Size represents dimensions in world units.
type Size struct {
	Width  float64
	Height float64
}

// Color represents RGBA display color for a layer.
type Color struct {
	R, G, B, A float64 // Color components (0.0-1.0)
}

// BoundingBox represents a rectangular boundary.
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},
		Max: Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box is empty (nothing expanded into it).
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the bounding box to include a position.
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox grows the bounding box to include another bounding box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Intersects checks if two bounding boxes intersect.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

// Contains checks if a position is within the bounding box.
func (bb BoundingBox) Contains(pos Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// Width returns the width of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
