// Package orient assigns a body rotation and a visual pad orientation
// (natural, horizontal or vertical) to every component pin of a decoded
// board.
//
// The resolver runs three passes per component, all pure functions over that
// component's pins and outline: an analysis pass in a frame aligned to the
// component's dominant outline angle, a local collision/overflow correction
// pass, and a final boundary sweep. Components never influence each other,
// and identical input geometry always yields identical orientations.
package orient

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// Aspect ratio beyond which a component body counts as wide or tall.
const aspectThreshold = 1.2

// Edge-band discretization: grid cells are this fraction of the body's
// short side, and a band counts as on-edge when its mean coordinate is
// within this fraction of the short side from the boundary.
const (
	gridCellFraction = 0.05
	edgeBandFraction = 0.25
)

// pinState is the resolver's working view of one pin, in the analysis frame.
type pinState struct {
	pos    board.Position
	width  float64 // Natural extent
	height float64
	short  float64
	long   float64
	round  bool
	edge   board.Edge
	orient board.Orientation
}

// compState gathers everything the three passes need about one component.
type compState struct {
	pins     []pinState
	box      board.BoundingBox
	rotation float64 // Radians, dominant outline angle
	wide     bool
	tall     bool
	maxLine  int // Largest number of pins sharing one edge band
	edges    map[board.Edge]int
}

// Resolve assigns orientations across all components of a board. Boards are
// resolved in place; call once after decoding.
func Resolve(b *board.Board) {
	for i := range b.Components {
		ResolveComponent(&b.Components[i])
	}
}

// ResolveComponent runs the three passes on a single component. Components
// without pins are left untouched. The passes are deterministic and
// idempotent: re-running on unchanged geometry reproduces the same result.
func ResolveComponent(c *board.Component) {
	if len(c.Pins) == 0 {
		return
	}

	st := analyze(c)
	correctLocal(st)
	sweepBoundary(st)

	c.Rotation = st.rotation
	for i := range c.Pins {
		pin := &c.Pins[i]
		ps := &st.pins[i]
		pin.Width = ps.width
		pin.Height = ps.height
		pin.ShortSide = ps.short
		pin.LongSide = ps.long
		pin.AssignedEdge = ps.edge
		pin.Orientation = ps.orient
	}
}

// orientedExtent returns the axis-aligned extent of a pin under its current
// orientation: natural keeps the pad's own axes, horizontal lays the long
// side along X, vertical along Y.
func (p *pinState) orientedExtent() (w, h float64) {
	switch p.orient {
	case board.OrientationHorizontal:
		return p.long, p.short
	case board.OrientationVertical:
		return p.short, p.long
	default:
		return p.width, p.height
	}
}

// opposite returns the orientation with long and short sides swapped
// relative to the current one.
func (p *pinState) opposite() board.Orientation {
	w, _ := p.orientedExtent()
	if w == p.long {
		return board.OrientationVertical
	}
	return board.OrientationHorizontal
}

// rotate maps a position into the analysis frame (rotation by -theta).
func rotate(pos board.Position, theta float64) board.Position {
	if theta == 0 {
		return pos
	}
	sin, cos := math.Sin(-theta), math.Cos(-theta)
	return board.Position{
		X: pos.X*cos - pos.Y*sin,
		Y: pos.X*sin + pos.Y*cos,
	}
}
