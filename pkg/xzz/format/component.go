package format

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// Component sub-block type tags.
const (
	subEnd     = 0x00
	subOutline = 0x05
	subText    = 0x06
	subPin     = 0x09
)

// pinFooterSize is the fixed trailer of a pin sub-block; the net id lives in
// its first four bytes.
const pinFooterSize = 12

// parseComponent decrypts and decodes one component block. The payload is
// DES-protected; after decryption a small header is followed by a nested
// sequence of length-prefixed sub-blocks (outline segments, embedded text,
// pins) bounded by the declared part size.
//
// A sub-block that overruns its bounds truncates parsing of this component
// only: the component is returned with whatever sub-blocks were consumed.
func parseComponent(payload []byte, ctx *parseContext) (*board.Component, error) {
	plain, err := decryptComponentBlock(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt component block: %w", err)
	}

	r := newReader(plain)

	partSize, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse component size: %w", err)
	}
	if err := r.skip(4); err != nil {
		return nil, fmt.Errorf("failed to parse component header: %w", err)
	}
	x, _ := r.i32()
	y, err := r.i32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse component anchor: %w", err)
	}
	if err := r.skip(4); err != nil {
		return nil, fmt.Errorf("failed to parse component header: %w", err)
	}
	flags, err := r.u16()
	if err != nil {
		return nil, fmt.Errorf("failed to parse component flags: %w", err)
	}

	nameLen, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name length: %w", err)
	}
	if int(nameLen) > r.remaining() {
		return nil, fmt.Errorf("footprint name of %d bytes overruns component of %d bytes",
			nameLen, len(plain))
	}
	nameBytes, _ := r.bytes(int(nameLen))

	comp := &board.Component{
		Footprint: decodeText(nameBytes),
		Anchor:    board.Position{X: coord(x), Y: coord(y)},
		Side:      int(flags & 0xFF),
		Type:      int(flags >> 8),
	}

	// The declared part size bounds the nested sub-blocks; so does the
	// buffer itself.
	end := int(partSize)
	if end > len(plain) || end == 0 {
		end = len(plain)
	}

	parseComponentSubBlocks(r, end, comp)

	// Outline segments override any default extent
	if len(comp.Outline) > 0 {
		bbox := comp.OutlineBoundingBox()
		comp.Width = bbox.Width()
		comp.Height = bbox.Height()
	}

	if comp.Reference == "" {
		comp.Reference = synthesizeReference(comp.Footprint, ctx)
	}

	attachDiagnostics(comp, ctx)
	return comp, nil
}

// parseComponentSubBlocks consumes the nested sub-block loop. Any bound
// violation stops the loop; everything consumed so far stays on comp.
func parseComponentSubBlocks(r *reader, end int, comp *board.Component) {
	for r.pos < end && r.pos < len(r.buf) {
		subType, err := r.u8()
		if err != nil || subType == subEnd {
			return
		}
		length, err := r.u32()
		if err != nil {
			return
		}
		if r.pos+int(length) > end || r.pos+int(length) > len(r.buf) {
			fmt.Printf("[WARN] Component %q: sub-block %#02x of %d bytes overruns bounds, truncating\n",
				comp.Footprint, subType, length)
			return
		}
		payload, err := r.bytes(int(length))
		if err != nil {
			return
		}

		switch subType {
		case subOutline:
			if seg, err := parseOutlineSegment(payload); err == nil {
				comp.Outline = append(comp.Outline, *seg)
			}
		case subText:
			if label, err := parseEmbeddedText(payload); err == nil {
				comp.Labels = append(comp.Labels, *label)
				// The first two embedded labels carry the reference
				// designator and the value
				switch len(comp.Labels) {
				case 1:
					comp.Reference = label.Text
				case 2:
					comp.Value = label.Text
				}
			}
		case subPin:
			if pin, err := parsePin(payload); err == nil {
				comp.Pins = append(comp.Pins, *pin)
			}
		default:
			// Unknown sub-block types are skipped by length
		}
	}
}

// parseOutlineSegment decodes one graphical outline stroke.
// Layout: layer u32, start x/y i32, end x/y i32, thickness u32.
func parseOutlineSegment(payload []byte) (*board.LineSegment, error) {
	r := newReader(payload)

	layer, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse outline layer: %w", err)
	}
	x1, _ := r.i32()
	y1, _ := r.i32()
	x2, _ := r.i32()
	y2, _ := r.i32()
	thickness, err := r.i32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse outline segment: %w", err)
	}

	return &board.LineSegment{
		Layer:     int(layer),
		Start:     board.Position{X: coord(x1), Y: coord(y1)},
		End:       board.Position{X: coord(x2), Y: coord(y2)},
		Thickness: coord(thickness),
	}, nil
}

// parseEmbeddedText decodes a component-relative text label.
// Layout: layer u32, x/y i32, font size u32, font scale u32, 4 bytes
// padding, visibility u8, flags u8, name length u32, name bytes.
func parseEmbeddedText(payload []byte) (*board.TextLabel, error) {
	r := newReader(payload)

	layer, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded text layer: %w", err)
	}
	x, _ := r.i32()
	y, _ := r.i32()
	fontSize, _ := r.i32()
	fontScale, _ := r.i32()
	if err := r.skip(4); err != nil {
		return nil, fmt.Errorf("failed to parse embedded text header: %w", err)
	}
	visibility, _ := r.u8()
	if _, err := r.u8(); err != nil { // secondary flag, unused
		return nil, fmt.Errorf("failed to parse embedded text header: %w", err)
	}

	nameLen, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded text length: %w", err)
	}
	if int(nameLen) > r.remaining() {
		return nil, fmt.Errorf("embedded text of %d bytes overruns record of %d bytes",
			nameLen, len(payload))
	}
	text, _ := r.bytes(int(nameLen))

	return &board.TextLabel{
		Text:              decodeText(text),
		Position:          board.Position{X: coord(x), Y: coord(y)},
		Layer:             int(layer),
		FontSize:          coord(fontSize),
		Scale:             float64(fontScale),
		Visible:           visibility != 0,
		ComponentRelative: true,
	}, nil
}

// parsePin decodes a pin sub-block.
// Layout: 4 bytes padding, x/y i32, 8 bytes padding, name length u32, name
// bytes, then up to four outline records (width i32, height i32, shape u8)
// terminated by a 5-byte all-zero marker. The net id sits in a fixed 12-byte
// footer at the end of the sub-block, not at a forward offset.
func parsePin(payload []byte) (*board.Pin, error) {
	r := newReader(payload)

	if err := r.skip(4); err != nil {
		return nil, fmt.Errorf("failed to parse pin header: %w", err)
	}
	x, _ := r.i32()
	y, err := r.i32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse pin position: %w", err)
	}
	if err := r.skip(8); err != nil {
		return nil, fmt.Errorf("failed to parse pin header: %w", err)
	}

	nameLen, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse pin name length: %w", err)
	}
	if int(nameLen) > r.remaining() {
		return nil, fmt.Errorf("pin name of %d bytes overruns record of %d bytes",
			nameLen, len(payload))
	}
	name, _ := r.bytes(int(nameLen))

	pin := &board.Pin{
		Position: board.Position{X: coord(x), Y: coord(y)},
		Name:     decodeText(name),
	}

	// Up to four outline records; only the first determines the pad shape.
	// The list ends with five zero bytes.
	for i := 0; i < 4; i++ {
		if r.remaining() < 9 {
			break
		}
		if allZero(r.buf[r.pos : r.pos+5]) {
			r.pos += 5
			break
		}
		w, _ := r.i32()
		h, _ := r.i32()
		shapeType, err := r.u8()
		if err != nil {
			break
		}
		if i == 0 {
			pin.Shape = padShapeFor(shapeType, coord(w), coord(h))
		}
	}

	// Net id lives in the fixed footer at the end of the sub-block
	if len(payload) >= pinFooterSize {
		footer := newReader(payload[len(payload)-pinFooterSize:])
		netID, err := footer.u32()
		if err == nil {
			pin.NetID = int(netID)
		}
	}

	return pin, nil
}

// padShapeFor maps a file shape type byte onto the pad shape union: type
// 0x01 is a circle when square and a capsule otherwise, type 0x02 is a
// rectangle. Anything else degrades to a circle sized by width.
func padShapeFor(shapeType uint8, w, h float64) board.PadShape {
	switch shapeType {
	case 0x01:
		if w == h {
			return board.CirclePad(w / 2)
		}
		return board.CapsulePad(w, h)
	case 0x02:
		return board.RectanglePad(w, h)
	default:
		return board.CirclePad(w / 2)
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// synthesizeReference names a component that carried no reference designator
// label, preferring the footprint name over a running counter.
func synthesizeReference(footprint string, ctx *parseContext) string {
	ctx.anonParts++
	if footprint != "" {
		return fmt.Sprintf("%s_%d", footprint, ctx.anonParts)
	}
	return fmt.Sprintf("PART_%d", ctx.anonParts)
}

// attachDiagnostics copies part/pin-keyed diagnostic readings onto the pins
// of a freshly parsed component. Net-keyed readings are attached later by
// the assembler once net names are known.
func attachDiagnostics(comp *board.Component, ctx *parseContext) {
	if len(ctx.diagnostics) == 0 {
		return
	}
	for i := range comp.Pins {
		if v := ctx.diagnostics.Get(comp.Reference, comp.Pins[i].Name); v != "" {
			comp.Pins[i].Reading = v
		}
	}
}
