package format

import (
	"bytes"
	"encoding/binary"
)

// Test fixture builders. These encode the exact record layouts the parsers
// expect, so parser tests can assemble complete synthetic files.

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func le16(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func lei32(v int32) []byte {
	return le32(uint32(v))
}

// block wraps a payload with its type tag and length prefix.
func block(tag byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(tag)
	buf.Write(le32(uint32(len(payload))))
	buf.Write(payload)
	return buf.Bytes()
}

func arcPayload(layer int, x, y, radius, start, end, thickness int32, netID int) []byte {
	var buf bytes.Buffer
	buf.Write(le32(uint32(layer)))
	buf.Write(lei32(x))
	buf.Write(lei32(y))
	buf.Write(lei32(radius))
	buf.Write(lei32(start))
	buf.Write(lei32(end))
	buf.Write(lei32(thickness))
	buf.Write(le32(uint32(netID)))
	return buf.Bytes()
}

func viaPayload(x, y, topR, botR int32, from, to, netID int, text string) []byte {
	var buf bytes.Buffer
	buf.Write(lei32(x))
	buf.Write(lei32(y))
	buf.Write(lei32(topR))
	buf.Write(lei32(botR))
	buf.Write(le32(uint32(from)))
	buf.Write(le32(uint32(to)))
	buf.Write(le32(uint32(netID)))
	if text != "" {
		buf.Write(le32(uint32(len(text))))
		buf.WriteString(text)
	}
	return buf.Bytes()
}

func tracePayload(layer int, x1, y1, x2, y2, width int32, netID int) []byte {
	var buf bytes.Buffer
	buf.Write(le32(uint32(layer)))
	buf.Write(lei32(x1))
	buf.Write(lei32(y1))
	buf.Write(lei32(x2))
	buf.Write(lei32(y2))
	buf.Write(lei32(width))
	buf.Write(le32(uint32(netID)))
	return buf.Bytes()
}

func textPayload(layer int, x, y, size, scale, rotation int32, visible bool, text string) []byte {
	var buf bytes.Buffer
	buf.Write(le32(uint32(layer)))
	buf.Write(lei32(x))
	buf.Write(lei32(y))
	buf.Write(lei32(size))
	buf.Write(lei32(scale))
	buf.Write(lei32(rotation))
	if visible {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	buf.WriteByte(0) // flags
	buf.Write(le32(uint32(len(text))))
	buf.WriteString(text)
	return buf.Bytes()
}

// Component sub-block builders (cleartext; encrypt with
// encryptComponentBlock before wrapping in a 0x07 block).

func subBlock(tag byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(tag)
	buf.Write(le32(uint32(len(payload))))
	buf.Write(payload)
	return buf.Bytes()
}

func outlinePayload(layer int, x1, y1, x2, y2, thickness int32) []byte {
	var buf bytes.Buffer
	buf.Write(le32(uint32(layer)))
	buf.Write(lei32(x1))
	buf.Write(lei32(y1))
	buf.Write(lei32(x2))
	buf.Write(lei32(y2))
	buf.Write(lei32(thickness))
	return buf.Bytes()
}

func embeddedTextPayload(layer int, x, y, size, scale int32, visible bool, text string) []byte {
	var buf bytes.Buffer
	buf.Write(le32(uint32(layer)))
	buf.Write(lei32(x))
	buf.Write(lei32(y))
	buf.Write(lei32(size))
	buf.Write(lei32(scale))
	buf.Write(le32(0)) // padding
	if visible {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	buf.WriteByte(0) // secondary flag
	buf.Write(le32(uint32(len(text))))
	buf.WriteString(text)
	return buf.Bytes()
}

// pinOutlineRec is one (width, height, shape) record of a pin sub-block.
type pinOutlineRec struct {
	w, h  int32
	shape byte
}

func pinPayload(x, y int32, name string, recs []pinOutlineRec, netID int) []byte {
	var buf bytes.Buffer
	buf.Write(le32(0)) // padding
	buf.Write(lei32(x))
	buf.Write(lei32(y))
	buf.Write(make([]byte, 8)) // padding
	buf.Write(le32(uint32(len(name))))
	buf.WriteString(name)
	for _, rec := range recs {
		buf.Write(lei32(rec.w))
		buf.Write(lei32(rec.h))
		buf.WriteByte(rec.shape)
	}
	buf.Write(make([]byte, 5)) // terminator
	// 12-byte footer carrying the net id
	buf.Write(le32(uint32(netID)))
	buf.Write(make([]byte, 8))
	return buf.Bytes()
}

// componentPlain assembles a cleartext component block: header, footprint
// name and sub-blocks, with the declared part size covering everything.
func componentPlain(x, y int32, footprint string, subs ...[]byte) []byte {
	return componentPlainFlags(x, y, 0, footprint, subs...)
}

// componentPlainFlags is componentPlain with an explicit header flags word
// (low byte mounting side, high byte type tag).
func componentPlainFlags(x, y int32, flags uint16, footprint string, subs ...[]byte) []byte {
	var body bytes.Buffer
	body.Write(le32(0)) // padding
	body.Write(lei32(x))
	body.Write(lei32(y))
	body.Write(le32(0)) // padding
	body.Write(le16(flags))
	body.Write(le32(uint32(len(footprint))))
	body.WriteString(footprint)
	for _, sub := range subs {
		body.Write(sub)
	}
	body.WriteByte(subEnd)

	var buf bytes.Buffer
	buf.Write(le32(uint32(body.Len() + 4)))
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// componentBlock encrypts a cleartext component and wraps it as a 0x07
// block.
func componentBlock(plain []byte) []byte {
	enc, err := encryptComponentBlock(plain)
	if err != nil {
		panic(err)
	}
	return block(blockComponent, enc)
}

// fileBuilder assembles a complete synthetic XZZPCB file.
type fileBuilder struct {
	mainBlocks []byte
	netTable   []byte
	diag       []byte
}

func (fb *fileBuilder) addBlock(b []byte) {
	fb.mainBlocks = append(fb.mainBlocks, b...)
}

func (fb *fileBuilder) addNet(id int, name string) {
	fb.netTable = append(fb.netTable, le32(uint32(8+len(name)))...)
	fb.netTable = append(fb.netTable, le32(uint32(id))...)
	fb.netTable = append(fb.netTable, name...)
}

// addRawNetRecord appends arbitrary net-table bytes for corruption tests.
func (fb *fileBuilder) addRawNetRecord(raw []byte) {
	fb.netTable = append(fb.netTable, raw...)
}

// build lays out header, main region, net table and diagnostic section.
func (fb *fileBuilder) build() []byte {
	var buf bytes.Buffer
	header := make([]byte, mainRegionStart)
	copy(header, signature)
	buf.Write(header)
	buf.Write(fb.mainBlocks)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[mainLengthField:], uint32(len(fb.mainBlocks)))

	if fb.netTable != nil {
		netOffset := len(out)
		binary.LittleEndian.PutUint32(out[netOffsetField:], uint32(netOffset-sectionBase))
		out = append(out, le32(uint32(len(fb.netTable)))...)
		out = append(out, fb.netTable...)
	}

	if fb.diag != nil {
		out = append(out, diagnosticMarker...)
		out = append(out, []byte("???????")...) // markerSkip filler
		out = append(out, fb.diag...)
	}

	return out
}

// buildMasked XORs a built file with the whole-file key. The diagnostic
// section stays cleartext; the key byte falls out of the XOR naturally
// because the cleartext key field is zero.
func (fb *fileBuilder) buildMasked(key byte) []byte {
	plain := fb.build()
	end := len(plain)
	if idx := bytes.Index(plain, diagnosticMarker); idx >= 0 {
		end = idx
	}
	out := make([]byte, len(plain))
	copy(out, plain)
	for i := 0; i < end; i++ {
		out[i] ^= key
	}
	return out
}
