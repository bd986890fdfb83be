package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// DecodeFile reads and decodes an XZZPCB board file.
func DecodeFile(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	b, err := Decode(data)
	if err != nil {
		return nil, err
	}
	b.SourcePath = path
	b.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return b, nil
}

// Decode verifies, decrypts and parses a raw XZZPCB byte buffer into an
// assembled board. On any fatal parse error no board is returned; a partial
// board is never surfaced. Element-local failures inside individual blocks
// drop that element only.
//
// The returned board is normalized around its outline centroid and marked
// loaded. Pin orientations are assigned separately by the orient package.
func Decode(data []byte) (*board.Board, error) {
	if !Verify(data) {
		return nil, fmt.Errorf("not an XZZPCB file: bad signature")
	}

	plain := Decrypt(data)
	r := newReader(plain)

	h, err := parseHeader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	// The diagnostic table must exist before element parsing: pin decoding
	// consults it.
	ctx := &parseContext{diagnostics: parseDiagnostics(plain)}

	b := board.NewBoard("")
	b.Diagnostics = ctx.diagnostics

	if err := parseMainBlocks(r, h, b, ctx); err != nil {
		return nil, fmt.Errorf("failed to parse main block region: %w", err)
	}

	if err := parseNetTable(r, h, b); err != nil {
		return nil, fmt.Errorf("failed to parse net table: %w", err)
	}

	attachNetDiagnostics(b)
	b.Normalize()
	b.MarkLoaded()
	return b, nil
}

// attachNetDiagnostics fills in readings for pins whose net carries a
// net-keyed (Layout B) diagnostic entry and that got nothing from the
// part/pin-keyed pass during component parsing.
func attachNetDiagnostics(b *board.Board) {
	if len(b.Diagnostics) == 0 {
		return
	}
	for i := range b.Components {
		comp := &b.Components[i]
		for j := range comp.Pins {
			pin := &comp.Pins[j]
			if pin.Reading != "" {
				continue
			}
			if name := b.NetName(pin.NetID); name != "" {
				if v := b.Diagnostics.Get(name, board.DiagnosticKey); v != "" {
					pin.Reading = v
				}
			}
		}
	}
}
