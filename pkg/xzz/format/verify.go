package format

import "bytes"

// File signature, stored in cleartext or XOR-masked with the key byte.
var signature = []byte("XZZPCB")

// xorKeyOffset is where the whole-file XOR key byte lives. Zero means the
// file is not obfuscated.
const xorKeyOffset = 0x10

// diagnosticMarker introduces the optional trailing diagnostic section. The
// section is plain text and is never XOR-obfuscated, so whole-file
// decryption must stop at the marker.
var diagnosticMarker = []byte{0x76, 0x36, 0x76, 0x36, 0x35, 0x35, 0x35, 0x76, 0x36, 0x76, 0x36}

// xorKey returns the whole-file XOR key byte, or 0 for unobfuscated files.
func xorKey(data []byte) byte {
	if len(data) <= xorKeyOffset {
		return 0
	}
	return data[xorKeyOffset]
}

// Verify reports whether data begins with a valid XZZPCB signature, either
// directly or after unmasking with the stored XOR key.
func Verify(data []byte) bool {
	if len(data) < len(signature) {
		return false
	}
	if bytes.Equal(data[:len(signature)], signature) {
		return true
	}
	key := xorKey(data)
	if key == 0 {
		return false
	}
	for i, want := range signature {
		if data[i]^key != want {
			return false
		}
	}
	return true
}

// Decrypt reverses the whole-file XOR obfuscation and returns a fresh
// buffer. The trailing diagnostic section, when present, is stored in
// cleartext and is excluded from the XOR. Calling Decrypt on an unobfuscated
// file (key byte zero) returns a plain copy. XOR is its own inverse, so a
// second application restores the input.
func Decrypt(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	key := xorKey(data)
	if key == 0 {
		return out
	}

	end := len(out)
	if idx := bytes.Index(out, diagnosticMarker); idx >= 0 {
		end = idx
	}
	for i := 0; i < end; i++ {
		out[i] ^= key
	}
	return out
}
