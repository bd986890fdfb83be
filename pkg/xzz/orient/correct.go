package orient

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// Pass 3 boundary margin: this fraction of the larger box dimension, with an
// absolute floor.
const (
	sweepMarginFraction = 0.001
	sweepMarginFloor    = 1e-4
)

// rect is an axis-aligned rectangle in the analysis frame.
type rect struct {
	minX, minY, maxX, maxY float64
}

func pinRect(p *pinState, o board.Orientation) rect {
	saved := p.orient
	p.orient = o
	w, h := p.orientedExtent()
	p.orient = saved
	return rect{
		minX: p.pos.X - w/2,
		minY: p.pos.Y - h/2,
		maxX: p.pos.X + w/2,
		maxY: p.pos.Y + h/2,
	}
}

func (r rect) overlaps(other rect) bool {
	return r.minX < other.maxX && r.maxX > other.minX &&
		r.minY < other.maxY && r.maxY > other.minY
}

func (r rect) inside(box board.BoundingBox) bool {
	return r.minX >= box.Min.X && r.maxX <= box.Max.X &&
		r.minY >= box.Min.Y && r.maxY <= box.Max.Y
}

// overflow measures how far the rectangle pokes past the box, as total
// linear overhang across all four sides.
func (r rect) overflow(box board.BoundingBox) float64 {
	var total float64
	if d := box.Min.X - r.minX; d > 0 {
		total += d
	}
	if d := r.maxX - box.Max.X; d > 0 {
		total += d
	}
	if d := box.Min.Y - r.minY; d > 0 {
		total += d
	}
	if d := r.maxY - box.Max.Y; d > 0 {
		total += d
	}
	return total
}

// dirty reports whether a pin, under orientation o, either escapes the body
// box or collides with another pin.
func dirty(st *compState, i int, o board.Orientation) bool {
	r := pinRect(&st.pins[i], o)
	if !r.inside(st.box) {
		return true
	}
	for j := range st.pins {
		if j == i {
			continue
		}
		if r.overlaps(pinRect(&st.pins[j], st.pins[j].orient)) {
			return true
		}
	}
	return false
}

// correctLocal is pass 2: for every non-round pin that escapes the body box
// or collides with a neighbor, try the opposite orientation and accept the
// flip only when it is clean on both tests.
func correctLocal(st *compState) {
	if len(st.pins) < 2 {
		return
	}
	for i := range st.pins {
		p := &st.pins[i]
		if p.round || p.short == p.long {
			continue
		}
		if !dirty(st, i, p.orient) {
			continue
		}
		if opp := p.opposite(); !dirty(st, i, opp) {
			p.orient = opp
		}
	}
}

// sweepBoundary is pass 3: with pass-2 orientations in place, any pin still
// overhanging the body boundary by more than a small margin keeps whichever
// of its two orientations minimizes total linear overflow.
func sweepBoundary(st *compState) {
	if len(st.pins) < 2 {
		return
	}
	margin := math.Max(
		sweepMarginFraction*math.Max(st.box.Width(), st.box.Height()),
		sweepMarginFloor,
	)

	for i := range st.pins {
		p := &st.pins[i]
		if p.round || p.short == p.long {
			continue
		}
		current := pinRect(p, p.orient).overflow(st.box)
		if current <= margin {
			continue
		}
		if opp := p.opposite(); pinRect(p, opp).overflow(st.box) < current {
			p.orient = opp
		}
	}
}
