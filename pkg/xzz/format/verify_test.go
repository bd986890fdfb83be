package format

import (
	"bytes"
	"testing"
)

func TestVerify(t *testing.T) {
	fb := &fileBuilder{}
	plain := fb.build()

	if !Verify(plain) {
		t.Errorf("Verify() = false for a valid unmasked file")
	}

	masked := fb.buildMasked(0x5A)
	if !Verify(masked) {
		t.Errorf("Verify() = false for a valid masked file")
	}
	if masked[xorKeyOffset] != 0x5A {
		t.Errorf("masked key byte = %#02x, want 0x5a", masked[xorKeyOffset])
	}

	// Every 1-byte mutation of the signature must fail verification
	for i := 0; i < len(signature); i++ {
		for _, f := range []struct {
			name string
			data []byte
		}{
			{"unmasked", plain},
			{"masked", masked},
		} {
			mutated := make([]byte, len(f.data))
			copy(mutated, f.data)
			mutated[i] ^= 0xFF
			if Verify(mutated) {
				t.Errorf("Verify() = true for %s file with signature byte %d mutated", f.name, i)
			}
		}
	}

	if Verify([]byte("XZZ")) {
		t.Errorf("Verify() = true for a truncated file")
	}
	if Verify(nil) {
		t.Errorf("Verify() = true for empty input")
	}
}

func TestDecryptUnmasksWholeFile(t *testing.T) {
	fb := &fileBuilder{}
	fb.addBlock(block(blockTrace, tracePayload(1, 0, 0, 10000, 0, 1000, 3)))
	plain := fb.build()
	masked := fb.buildMasked(0x77)

	got := Decrypt(masked)
	if !bytes.Equal(got, plain) {
		t.Errorf("Decrypt() did not restore the original bytes")
	}

	// Unmasked input passes through unchanged
	if !bytes.Equal(Decrypt(plain), plain) {
		t.Errorf("Decrypt() modified an unmasked file")
	}
}

func TestDecryptStopsAtDiagnosticMarker(t *testing.T) {
	fb := &fileBuilder{diag: []byte("\r\nGND=1.0V\r\n\r\n")}
	plain := fb.build()
	masked := fb.buildMasked(0x33)

	markerIdx := bytes.Index(plain, diagnosticMarker)
	if markerIdx < 0 {
		t.Fatalf("fixture has no diagnostic marker")
	}

	// The trailing section must be stored cleartext in the masked file
	if !bytes.Equal(masked[markerIdx:], plain[markerIdx:]) {
		t.Fatalf("fixture masked the diagnostic section")
	}

	got := Decrypt(masked)
	if !bytes.Equal(got, plain) {
		t.Errorf("Decrypt() did not restore a file with a diagnostic section")
	}
}

func TestXORIsItsOwnInverse(t *testing.T) {
	fb := &fileBuilder{}
	fb.addBlock(block(blockTrace, tracePayload(1, -5, 5, 10, 20, 30, 0)))
	plain := fb.build()

	masked := fb.buildMasked(0xA5)
	twice := make([]byte, len(masked))
	copy(twice, masked)
	for i := range twice {
		twice[i] ^= 0xA5
		twice[i] ^= 0xA5
	}
	if !bytes.Equal(twice, masked) {
		t.Errorf("double XOR is not the identity")
	}
	if !bytes.Equal(Decrypt(masked), plain) {
		t.Errorf("Decrypt() is not the inverse of masking")
	}
}
