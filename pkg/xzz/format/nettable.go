package format

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// parseNetTable decodes the net-name table into the board's net map. The
// region begins with a total-size field; each entry is a declared record
// size, a net id, and the remaining bytes of name text.
//
// A record size below 8 is corrupt: zero aborts the load (it cannot be
// bounded), anything else skips the malformed record by its own size. A
// record extending past the file or the total-size bound is fatal.
func parseNetTable(r *reader, h *header, b *board.Board) error {
	if h.netOffset == 0 {
		return nil // Section absent
	}
	if err := r.seek(h.netOffset); err != nil {
		return fmt.Errorf("failed to seek to net table: %w", err)
	}

	totalSize, err := r.u32()
	if err != nil {
		return fmt.Errorf("failed to read net table size: %w", err)
	}
	end := h.netOffset + 4 + int(totalSize)
	if end > len(r.buf) {
		end = len(r.buf)
	}

	for r.pos+8 <= end {
		recordStart := r.pos
		recordSize, err := r.u32()
		if err != nil {
			return fmt.Errorf("failed to read net record size: %w", err)
		}
		if recordSize == 0 {
			return fmt.Errorf("net table record of zero size at %d", recordStart)
		}
		if recordStart+int(recordSize) > end {
			return fmt.Errorf("net record of %d bytes at %d overruns table end %d",
				recordSize, recordStart, end)
		}
		if recordSize < 8 {
			// Corrupt but bounded: skip by its own declared size
			if err := r.seek(recordStart + int(recordSize)); err != nil {
				return fmt.Errorf("failed to skip malformed net record: %w", err)
			}
			continue
		}

		netID, err := r.u32()
		if err != nil {
			return fmt.Errorf("failed to read net id: %w", err)
		}
		name, err := r.bytes(int(recordSize) - 8)
		if err != nil {
			return fmt.Errorf("failed to read net name: %w", err)
		}

		b.Nets[int(netID)] = &board.Net{
			ID:   int(netID),
			Name: decodeText(name),
		}
	}

	return nil
}
