package format

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// coord converts a scaled file integer into world units.
func coord(v int32) float64 {
	return float64(v) / board.CoordinateScale
}

// angle converts a scaled file integer into degrees.
func angle(v int32) float64 {
	return float64(v) / board.AngleScale
}

// decodeText renders file text bytes tolerantly. The format stores names in
// CB2312; rather than attempt real multi-byte decoding, non-ASCII bytes are
// rendered as '?' so the rest of the name stays legible.
func decodeText(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 0x20 && b < 0x7F {
			out[i] = b
		} else {
			out[i] = '?'
		}
	}
	return string(out)
}

// parseArc decodes a fixed-layout arc record.
// Layout: layer u32, center x/y i32, radius i32, start/end angle i32
// (ten-thousandths of a degree), thickness i32, net id u32.
func parseArc(payload []byte) (*board.Arc, error) {
	r := newReader(payload)

	layer, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse arc layer: %w", err)
	}
	x, _ := r.i32()
	y, _ := r.i32()
	radius, _ := r.i32()
	start, _ := r.i32()
	end, _ := r.i32()
	thickness, _ := r.i32()
	netID, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse arc record: %w", err)
	}

	return &board.Arc{
		Layer:      int(layer),
		Center:     board.Position{X: coord(x), Y: coord(y)},
		Radius:     coord(radius),
		StartAngle: angle(start),
		EndAngle:   angle(end),
		Thickness:  coord(thickness),
		NetID:      int(netID),
	}, nil
}

// parseVia decodes a via record. The fixed core is followed by an optional
// length-prefixed annotation text. The same layout is reused for test pads.
// Layout: x/y i32, top/bottom pad radius i32, from/to layer u32, net id u32,
// [text length u32, text bytes].
func parseVia(payload []byte, testPad bool) (*board.Via, error) {
	r := newReader(payload)

	x, err := r.i32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse via position: %w", err)
	}
	y, _ := r.i32()
	topRadius, _ := r.i32()
	botRadius, _ := r.i32()
	fromLayer, _ := r.u32()
	toLayer, _ := r.u32()
	netID, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse via record: %w", err)
	}

	via := &board.Via{
		Position:  board.Position{X: coord(x), Y: coord(y)},
		TopRadius: coord(topRadius),
		BotRadius: coord(botRadius),
		FromLayer: int(fromLayer),
		ToLayer:   int(toLayer),
		NetID:     int(netID),
		TestPad:   testPad,
	}

	// Trailing annotation text is optional
	if r.remaining() >= 4 {
		textLen, err := r.u32()
		if err == nil && int(textLen) <= r.remaining() {
			text, err := r.bytes(int(textLen))
			if err == nil {
				via.Text = decodeText(text)
			}
		}
	}

	return via, nil
}

// parseTrace decodes a fixed 28-byte trace record.
// Layout: layer u32, start x/y i32, end x/y i32, width u32, net id u32.
func parseTrace(payload []byte) (*board.Trace, error) {
	r := newReader(payload)

	layer, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse trace layer: %w", err)
	}
	x1, _ := r.i32()
	y1, _ := r.i32()
	x2, _ := r.i32()
	y2, _ := r.i32()
	width, _ := r.i32()
	netID, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse trace record: %w", err)
	}

	return &board.Trace{
		Layer: int(layer),
		Start: board.Position{X: coord(x1), Y: coord(y1)},
		End:   board.Position{X: coord(x2), Y: coord(y2)},
		Width: coord(width),
		NetID: int(netID),
	}, nil
}

// parseTextLabel decodes a standalone text label: a fixed header followed by
// length-prefixed text.
// Layout: layer u32, x/y i32, font size u32, font scale u32, rotation i32
// (ten-thousandths of a degree), visibility u8, flags u8, text length u32,
// text bytes.
func parseTextLabel(payload []byte) (*board.TextLabel, error) {
	r := newReader(payload)

	layer, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse text label layer: %w", err)
	}
	x, _ := r.i32()
	y, _ := r.i32()
	fontSize, _ := r.i32()
	fontScale, _ := r.i32()
	rotation, _ := r.i32()
	visibility, _ := r.u8()
	if _, err := r.u8(); err != nil { // flags, unused
		return nil, fmt.Errorf("failed to parse text label header: %w", err)
	}

	textLen, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("failed to parse text label length: %w", err)
	}
	if int(textLen) > r.remaining() {
		return nil, fmt.Errorf("text label of %d bytes overruns record of %d bytes", textLen, len(payload))
	}
	text, _ := r.bytes(int(textLen))

	return &board.TextLabel{
		Text:     decodeText(text),
		Position: board.Position{X: coord(x), Y: coord(y)},
		Layer:    int(layer),
		FontSize: coord(fontSize),
		Scale:    float64(fontScale),
		Rotation: angle(rotation),
		Visible:  visibility != 0,
	}, nil
}
