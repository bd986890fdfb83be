package board

// Pin represents one pad of a component. Position is component-relative; a
// pin never moves when its component is translated, only the component anchor
// does. The Width/Height/ShortSide/LongSide/AssignedEdge/Orientation fields
// are filled in by the orientation resolver after assembly.
type Pin struct {
	Position Position // Relative to the owning component's anchor
	Name     string
	NetID    int
	Shape    PadShape
	Reading  string // Diagnostic annotation, empty unless the file carries one

	// Derived by the orientation resolver
	Width        float64
	Height       float64
	ShortSide    float64
	LongSide     float64
	AssignedEdge Edge
	Orientation  Orientation
}

// Component represents a placed part. It exclusively owns its pins, embedded
// text labels and outline segments; their coordinates are relative to Anchor.
type Component struct {
	Reference string // Reference designator, e.g. "U1"
	Value     string
	Footprint string
	Anchor    Position
	Rotation  float64 // Radians, derived from the dominant outline angle
	Width     float64 // Bounding box of outline segments when present
	Height    float64
	Side      int // Mounting side, low byte of the header flags word
	Type      int // Raw type tag, high byte of the header flags word

	Pins     []Pin
	Labels   []TextLabel
	Outline  []LineSegment
}

// OutlineBoundingBox computes the component-local bounding box of the
// outline segments. Empty when the component carries no outline.
func (c *Component) OutlineBoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, seg := range c.Outline {
		bbox.Expand(seg.Start)
		bbox.Expand(seg.End)
	}
	return bbox
}

// PinBoundingBox computes the component-local bounding box of all pin pads,
// expanded by each pad's natural extent.
func (c *Component) PinBoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for i := range c.Pins {
		pin := &c.Pins[i]
		w, h := pin.Shape.Extent()
		bbox.Expand(Position{X: pin.Position.X - w/2, Y: pin.Position.Y - h/2})
		bbox.Expand(Position{X: pin.Position.X + w/2, Y: pin.Position.Y + h/2})
	}
	return bbox
}

// BoundingBox computes the component's bounding box in board coordinates.
// Outline segments govern when present, the pin pads otherwise.
func (c *Component) BoundingBox() BoundingBox {
	local := c.OutlineBoundingBox()
	if local.IsEmpty() {
		local = c.PinBoundingBox()
	}
	if local.IsEmpty() {
		bbox := NewBoundingBox()
		bbox.Expand(c.Anchor)
		return bbox
	}
	return BoundingBox{
		Min: Position{X: local.Min.X + c.Anchor.X, Y: local.Min.Y + c.Anchor.Y},
		Max: Position{X: local.Max.X + c.Anchor.X, Y: local.Max.Y + c.Anchor.Y},
	}
}

// GetPin returns the pin with the given name, or nil if not found.
func (c *Component) GetPin(name string) *Pin {
	for i := range c.Pins {
		if c.Pins[i].Name == name {
			return &c.Pins[i]
		}
	}
	return nil
}
