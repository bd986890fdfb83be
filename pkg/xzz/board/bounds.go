package board

import "math"

// GetBoundingBox calculates the bounding box of the entire board across
// every element kind: traces, arcs, vias, standalone text and components.
func (b *Board) GetBoundingBox() BoundingBox {
	bbox := NewBoundingBox()

	for _, trace := range b.Traces {
		bbox.Expand(trace.Start)
		bbox.Expand(trace.End)
	}

	for _, via := range b.Vias {
		radius := math.Max(via.TopRadius, via.BotRadius)
		bbox.Expand(Position{X: via.Position.X - radius, Y: via.Position.Y - radius})
		bbox.Expand(Position{X: via.Position.X + radius, Y: via.Position.Y + radius})
	}

	for _, arc := range b.Arcs {
		// Conservative: the full circle the arc lies on
		bbox.Expand(Position{X: arc.Center.X - arc.Radius, Y: arc.Center.Y - arc.Radius})
		bbox.Expand(Position{X: arc.Center.X + arc.Radius, Y: arc.Center.Y + arc.Radius})
	}

	for _, text := range b.Texts {
		bbox.Expand(text.Position)
	}

	for i := range b.Components {
		bbox.ExpandBox(b.Components[i].BoundingBox())
	}

	return bbox
}

// OutlineBoundingBox calculates the bounding box of all traces on the board
// outline layer, regardless of layer visibility. This is the box the
// assembler centers the board around.
func (b *Board) OutlineBoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, trace := range b.Traces {
		if trace.Layer == BoardOutlineLayer {
			bbox.Expand(trace.Start)
			bbox.Expand(trace.End)
		}
	}
	return bbox
}

// Translate shifts every board coordinate by (dx, dy). Component-relative
// coordinates (pins, embedded labels, outline segments) are left untouched;
// only the component anchors move.
func (b *Board) Translate(dx, dy float64) {
	for i := range b.Arcs {
		b.Arcs[i].Center.X += dx
		b.Arcs[i].Center.Y += dy
	}
	for i := range b.Vias {
		b.Vias[i].Position.X += dx
		b.Vias[i].Position.Y += dy
	}
	for i := range b.Traces {
		b.Traces[i].Start.X += dx
		b.Traces[i].Start.Y += dy
		b.Traces[i].End.X += dx
		b.Traces[i].End.Y += dy
	}
	for i := range b.Texts {
		b.Texts[i].Position.X += dx
		b.Texts[i].Position.Y += dy
	}
	for i := range b.Components {
		b.Components[i].Anchor.X += dx
		b.Components[i].Anchor.Y += dy
	}
}

// Normalize recenters the board around its outline bounding box and records
// the extent and applied translation. Runs exactly once per load, after
// parsing and before orientation resolution. A board without an outline is
// left as-is with zero width and height.
func (b *Board) Normalize() {
	outline := b.OutlineBoundingBox()
	if outline.IsEmpty() || (outline.Width() == 0 && outline.Height() == 0) {
		return
	}

	center := outline.Center()
	b.Translate(-center.X, -center.Y)
	b.OriginOffset = Position{X: -center.X, Y: -center.Y}
	b.Width = outline.Width()
	b.Height = outline.Height()
}
