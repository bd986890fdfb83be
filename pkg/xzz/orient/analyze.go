package orient

import (
	"math"
	"sort"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// analyze is pass 1: build the working state in the analysis frame, classify
// the body and the pin edge bands, and assign initial orientations from the
// decision table.
func analyze(c *board.Component) *compState {
	st := &compState{
		rotation: dominantOutlineAngle(c),
		edges:    make(map[board.Edge]int),
	}

	for i := range c.Pins {
		pin := &c.Pins[i]
		w, h := pin.Shape.Extent()
		st.pins = append(st.pins, pinState{
			pos:    rotate(pin.Position, st.rotation),
			width:  w,
			height: h,
			short:  math.Min(w, h),
			long:   math.Max(w, h),
			round:  pin.Shape.IsRound(),
		})
	}

	// Single-pin components need no edge analysis
	if len(st.pins) == 1 {
		p := &st.pins[0]
		switch {
		case p.round:
			p.orient = board.OrientationNatural
		case p.height > p.width:
			p.orient = board.OrientationVertical
		default:
			p.orient = board.OrientationHorizontal
		}
		st.box = localBox(c, st)
		return st
	}

	st.box = localBox(c, st)
	st.wide = st.box.Width() > aspectThreshold*st.box.Height()
	st.tall = st.box.Height() > aspectThreshold*st.box.Width()

	classifyEdges(st)
	assignOrientations(st)
	return st
}

// dominantOutlineAngle finds the outline-segment direction (mod 180°, in
// radians) carrying the greatest total segment length. Components without an
// outline are treated as unrotated.
func dominantOutlineAngle(c *board.Component) float64 {
	if len(c.Outline) == 0 {
		return 0
	}

	// Accumulate length per whole-degree bucket
	var lengths [180]float64
	for _, seg := range c.Outline {
		dx := seg.End.X - seg.Start.X
		dy := seg.End.Y - seg.Start.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		deg := math.Mod(math.Atan2(dy, dx)*180/math.Pi+360, 180)
		lengths[int(deg)%180] += length
	}

	best := 0
	for i := 1; i < 180; i++ {
		if lengths[i] > lengths[best] {
			best = i
		}
	}
	if lengths[best] == 0 {
		return 0
	}
	return float64(best) * math.Pi / 180
}

// localBox computes the component's bounding box in the analysis frame:
// outline segments when present, then the declared width/height, then the
// pin pads.
func localBox(c *board.Component, st *compState) board.BoundingBox {
	if len(c.Outline) > 0 {
		bbox := board.NewBoundingBox()
		for _, seg := range c.Outline {
			bbox.Expand(rotate(seg.Start, st.rotation))
			bbox.Expand(rotate(seg.End, st.rotation))
		}
		return bbox
	}

	if c.Width > 0 && c.Height > 0 {
		return board.BoundingBox{
			Min: board.Position{X: -c.Width / 2, Y: -c.Height / 2},
			Max: board.Position{X: c.Width / 2, Y: c.Height / 2},
		}
	}

	bbox := board.NewBoundingBox()
	for i := range st.pins {
		p := &st.pins[i]
		bbox.Expand(board.Position{X: p.pos.X - p.width/2, Y: p.pos.Y - p.height/2})
		bbox.Expand(board.Position{X: p.pos.X + p.width/2, Y: p.pos.Y + p.height/2})
	}
	return bbox
}

// classifyEdges groups pins into candidate edge bands and tags each pin with
// the body edge its band hugs, or interior.
//
// Pins are discretized onto a grid sized at a fraction of the body's short
// side; pins sharing a discretized X form a candidate vertical line (and
// likewise for Y and horizontal lines) when at least two of them sit within
// a gap tolerance derived from the average pin size.
func classifyEdges(st *compState) {
	shortSide := math.Min(st.box.Width(), st.box.Height())
	cell := shortSide * gridCellFraction
	if cell <= 0 {
		cell = 1e-4
	}

	var sum float64
	for i := range st.pins {
		sum += st.pins[i].long
	}
	gapTol := 2.0 * sum / float64(len(st.pins))
	if gapTol <= 0 {
		gapTol = cell
	}

	for i := range st.pins {
		st.pins[i].edge = board.EdgeInterior
	}

	band := shortSide * edgeBandFraction

	// Vertical lines (shared X) claim left/right edges first, horizontal
	// lines claim top/bottom from whatever remains. Grid keys are walked in
	// sorted order so the assignment is independent of map iteration.
	assignLines(st, cell, gapTol, true, band)
	assignLines(st, cell, gapTol, false, band)

	for i := range st.pins {
		st.edges[st.pins[i].edge]++
	}
}

// assignLines builds candidate lines along one axis and tags their pins.
// vertical selects lines of constant X (left/right edges); otherwise lines
// of constant Y (top/bottom edges).
func assignLines(st *compState, cell, gapTol float64, vertical bool, band float64) {
	groups := make(map[int][]int)
	for i := range st.pins {
		key := st.pins[i].pos.Y
		if vertical {
			key = st.pins[i].pos.X
		}
		k := int(math.Round(key / cell))
		groups[k] = append(groups[k], i)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		idx := groups[k]
		if len(idx) < 2 {
			continue
		}

		// Along-line coordinates, sorted; the band qualifies as a line when
		// some adjacent pair is within the gap tolerance
		along := make([]float64, len(idx))
		var mean float64
		for n, i := range idx {
			if vertical {
				along[n] = st.pins[i].pos.Y
				mean += st.pins[i].pos.X
			} else {
				along[n] = st.pins[i].pos.X
				mean += st.pins[i].pos.Y
			}
		}
		mean /= float64(len(idx))
		sort.Float64s(along)

		qualified := false
		for n := 1; n < len(along); n++ {
			if along[n]-along[n-1] <= gapTol {
				qualified = true
				break
			}
		}
		if !qualified {
			continue
		}

		if len(idx) > st.maxLine {
			st.maxLine = len(idx)
		}

		edge := board.EdgeInterior
		if vertical {
			if mean-st.box.Min.X <= band {
				edge = board.EdgeLeft
			} else if st.box.Max.X-mean <= band {
				edge = board.EdgeRight
			}
		} else {
			if mean-st.box.Min.Y <= band {
				edge = board.EdgeTop
			} else if st.box.Max.Y-mean <= band {
				edge = board.EdgeBottom
			}
		}
		if edge == board.EdgeInterior {
			continue
		}

		for _, i := range idx {
			if st.pins[i].edge == board.EdgeInterior {
				st.pins[i].edge = edge
			}
		}
	}
}

// assignOrientations applies the fixed decision table keyed on the component
// class and each pin's edge.
func assignOrientations(st *compState) {
	qfp := st.edges[board.EdgeLeft] >= 2 && st.edges[board.EdgeRight] >= 2 &&
		st.edges[board.EdgeTop] >= 2 && st.edges[board.EdgeBottom] >= 2
	connector := !qfp && st.maxLine >= 8
	twoPad := len(st.pins) == 2

	for i := range st.pins {
		p := &st.pins[i]

		// Round pads have no visible orientation
		if p.round {
			p.orient = board.OrientationNatural
			continue
		}

		switch {
		case twoPad:
			// Pads sit across the separation axis
			dx := math.Abs(st.pins[0].pos.X - st.pins[1].pos.X)
			dy := math.Abs(st.pins[0].pos.Y - st.pins[1].pos.Y)
			if dx >= dy {
				p.orient = board.OrientationVertical
			} else {
				p.orient = board.OrientationHorizontal
			}

		case qfp:
			switch p.edge {
			case board.EdgeTop, board.EdgeBottom:
				p.orient = board.OrientationVertical
			case board.EdgeLeft, board.EdgeRight:
				p.orient = board.OrientationHorizontal
			default:
				p.orient = board.OrientationNatural
			}

		case connector:
			switch {
			case st.wide:
				p.orient = board.OrientationVertical
			case st.tall:
				p.orient = board.OrientationHorizontal
			default:
				p.orient = board.OrientationNatural
			}

		default:
			switch p.edge {
			case board.EdgeLeft, board.EdgeRight:
				p.orient = board.OrientationHorizontal
			case board.EdgeTop, board.EdgeBottom:
				p.orient = board.OrientationVertical
			default:
				p.orient = board.OrientationNatural
			}
		}
	}
}
