// Package xzz ties the XZZPCB decoder and the pin-orientation resolver into
// a single load operation. Most callers want Load or LoadFile; the format
// and orient subpackages remain available for callers that need only one
// half.
package xzz

import (
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/format"
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/orient"
)

// Load decodes a raw XZZPCB byte buffer and resolves pin orientations.
// On failure no board is returned; partial boards are never surfaced.
func Load(data []byte) (*board.Board, error) {
	b, err := format.Decode(data)
	if err != nil {
		return nil, err
	}
	orient.Resolve(b)
	return b, nil
}

// LoadFile reads, decodes and resolves an XZZPCB board file.
func LoadFile(path string) (*board.Board, error) {
	b, err := format.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	orient.Resolve(b)
	return b, nil
}
