// Package format decodes the proprietary XZZPCB binary board format into a
// board.Board. The format is little-endian throughout, optionally obfuscated
// with a whole-file XOR cipher, and protects each component block with a
// fixed-key DES layer.
//
// Decoding is a one-shot batch operation over an immutable byte buffer: the
// single entry point is Decode (or DecodeFile), which either returns a fully
// assembled board or an error, never a partial board.
package format

import (
	"encoding/binary"
	"fmt"
)

// reader provides bounds-checked little-endian primitive reads over an
// immutable byte buffer. Every read either advances the cursor or returns an
// error; no read ever touches memory past the buffer.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// seek positions the cursor at an absolute offset.
func (r *reader) seek(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return fmt.Errorf("seek to %d outside buffer of %d bytes", pos, len(r.buf))
	}
	r.pos = pos
	return nil
}

// skip advances the cursor by n bytes.
func (r *reader) skip(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return fmt.Errorf("skip of %d bytes at %d overruns buffer of %d bytes", n, r.pos, len(r.buf))
	}
	r.pos += n
	return nil
}

// bytes reads n raw bytes. The returned slice aliases the buffer.
func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("read of %d bytes at %d overruns buffer of %d bytes", n, r.pos, len(r.buf))
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	if r.pos+1 > len(r.buf) {
		return 0, fmt.Errorf("read of u8 at %d overruns buffer of %d bytes", r.pos, len(r.buf))
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, fmt.Errorf("read of u16 at %d overruns buffer of %d bytes", r.pos, len(r.buf))
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("read of u32 at %d overruns buffer of %d bytes", r.pos, len(r.buf))
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

// u32At reads a u32 at an absolute offset without moving the cursor.
func (r *reader) u32At(off int) (uint32, error) {
	if off < 0 || off+4 > len(r.buf) {
		return 0, fmt.Errorf("read of u32 at %d overruns buffer of %d bytes", off, len(r.buf))
	}
	return binary.LittleEndian.Uint32(r.buf[off:]), nil
}
