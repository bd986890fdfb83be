package format

import (
	"encoding/binary"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// Block type tags in the main element region.
const (
	blockArc       = 0x01
	blockVia       = 0x02
	blockUnknown3  = 0x03
	blockTrace     = 0x05
	blockTextLabel = 0x06
	blockComponent = 0x07
	blockTestPad   = 0x09
)

// parseContext carries the immutable inputs shared by nested parse steps:
// the diagnostic table (built before any element parsing) and the counter
// used to synthesize reference designators for anonymous components.
type parseContext struct {
	diagnostics board.DiagnosticTable
	anonParts   int
}

// parseMainBlocks walks the type-tagged, length-prefixed block sequence of
// the main element region and appends decoded elements to the board.
//
// Runs of four zero bytes are inter-block padding. A block whose declared
// payload would overrun the region or the file aborts the whole load; a
// payload that merely fails to decode drops that element only. Unknown block
// types are skipped by their declared length.
func parseMainBlocks(r *reader, h *header, b *board.Board, ctx *parseContext) error {
	if h.mainLength == 0 {
		return nil
	}
	if err := r.seek(h.mainStart); err != nil {
		return fmt.Errorf("failed to seek to main block region: %w", err)
	}
	end := h.mainStart + h.mainLength

	for r.pos < end {
		// Inter-block padding
		if r.pos+4 <= end && binary.LittleEndian.Uint32(r.buf[r.pos:]) == 0 {
			r.pos += 4
			continue
		}

		tag, err := r.u8()
		if err != nil {
			return fmt.Errorf("failed to read block tag: %w", err)
		}
		length, err := r.u32()
		if err != nil {
			return fmt.Errorf("failed to read block length: %w", err)
		}
		if r.pos+int(length) > end || r.pos+int(length) > len(r.buf) {
			return fmt.Errorf("block %#02x of %d bytes at %d overruns main region end %d",
				tag, length, r.pos, end)
		}
		payload, err := r.bytes(int(length))
		if err != nil {
			return fmt.Errorf("failed to read block payload: %w", err)
		}

		switch tag {
		case blockArc:
			arc, err := parseArc(payload)
			if err != nil {
				fmt.Printf("[WARN] Skipping malformed arc block: %v\n", err)
				continue
			}
			b.Arcs = append(b.Arcs, *arc)

		case blockVia, blockTestPad:
			via, err := parseVia(payload, tag == blockTestPad)
			if err != nil {
				fmt.Printf("[WARN] Skipping malformed via block: %v\n", err)
				continue
			}
			b.Vias = append(b.Vias, *via)

		case blockTrace:
			trace, err := parseTrace(payload)
			if err != nil {
				fmt.Printf("[WARN] Skipping malformed trace block: %v\n", err)
				continue
			}
			b.Traces = append(b.Traces, *trace)

		case blockTextLabel:
			label, err := parseTextLabel(payload)
			if err != nil {
				fmt.Printf("[WARN] Skipping malformed text block: %v\n", err)
				continue
			}
			b.Texts = append(b.Texts, *label)

		case blockComponent:
			comp, err := parseComponent(payload, ctx)
			if err != nil {
				fmt.Printf("[WARN] Skipping malformed component block: %v\n", err)
				continue
			}
			b.Components = append(b.Components, *comp)

		default:
			// Unknown block types (including 0x03) are skipped by length
		}
	}

	return nil
}
