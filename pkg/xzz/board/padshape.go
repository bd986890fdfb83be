package board

// PadShapeKind discriminates the closed set of pad geometries. The set is
// fixed by the file format; every consumer switches exhaustively on it.
type PadShapeKind int

const (
	PadCircle PadShapeKind = iota
	PadRectangle
	PadCapsule
)

// String returns the display name of a pad shape kind.
func (k PadShapeKind) String() string {
	switch k {
	case PadCircle:
		return "circle"
	case PadRectangle:
		return "rectangle"
	default:
		return "capsule"
	}
}

// PadShape is a tagged union over the three pad geometries. Radius is
// meaningful only for PadCircle; Width/Height only for PadRectangle and
// PadCapsule.
type PadShape struct {
	Kind   PadShapeKind
	Radius float64
	Width  float64
	Height float64
}

// CirclePad constructs a circular pad shape.
func CirclePad(radius float64) PadShape {
	return PadShape{Kind: PadCircle, Radius: radius}
}

// RectanglePad constructs a rectangular pad shape.
func RectanglePad(width, height float64) PadShape {
	return PadShape{Kind: PadRectangle, Width: width, Height: height}
}

// CapsulePad constructs a stadium-shaped pad.
func CapsulePad(width, height float64) PadShape {
	return PadShape{Kind: PadCapsule, Width: width, Height: height}
}

// Extent returns the axis-aligned width and height of the shape in its
// natural (unrotated) orientation.
func (s PadShape) Extent() (width, height float64) {
	switch s.Kind {
	case PadCircle:
		return 2 * s.Radius, 2 * s.Radius
	default:
		return s.Width, s.Height
	}
}

// IsRound reports whether the shape has no preferred axis.
func (s PadShape) IsRound() bool {
	if s.Kind == PadCircle {
		return true
	}
	return s.Width == s.Height
}

// Orientation is the resolver-assigned visual orientation of a pin pad.
type Orientation int

const (
	OrientationNatural Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

// String returns the display name of an orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "natural"
	}
}

// Edge identifies which local edge of a component body a pin belongs to,
// as classified by the orientation resolver.
type Edge int

const (
	EdgeUnknown Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
	EdgeInterior
)

// String returns the display name of an edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeInterior:
		return "interior"
	default:
		return "unknown"
	}
}
