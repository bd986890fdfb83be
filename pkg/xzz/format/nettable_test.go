package format

import (
	"testing"
)

func TestNetTableRoundTrip(t *testing.T) {
	fb := &fileBuilder{}
	fb.addNet(7, "GND")
	fb.addNet(8, "+3V3")
	b := decodeFixture(t, fb)

	if len(b.Nets) != 2 {
		t.Fatalf("got %d nets, want 2", len(b.Nets))
	}
	if net := b.GetNet(7); net == nil || net.Name != "GND" {
		t.Errorf("net 7 = %+v, want GND", net)
	}
	if got := b.NetName(8); got != "+3V3" {
		t.Errorf("net 8 name = %q, want +3V3", got)
	}
}

func TestNetTableAbsent(t *testing.T) {
	fb := &fileBuilder{}
	b := decodeFixture(t, fb)
	if len(b.Nets) != 0 {
		t.Errorf("got %d nets from a file without a net table", len(b.Nets))
	}
}

func TestNetTableZeroSizeRecordIsFatal(t *testing.T) {
	fb := &fileBuilder{}
	fb.addRawNetRecord(le32(0))
	fb.addRawNetRecord(le32(7))

	if _, err := Decode(fb.build()); err == nil {
		t.Fatalf("Decode() accepted a zero-size net record")
	}
}

func TestNetTableSmallRecordIsSkipped(t *testing.T) {
	fb := &fileBuilder{}
	// A 4-byte record: corrupt but bounded, skipped by its own size
	fb.addRawNetRecord(le32(4))
	fb.addNet(3, "CLK")
	b := decodeFixture(t, fb)

	if len(b.Nets) != 1 || b.NetName(3) != "CLK" {
		t.Errorf("nets = %v, want only net 3 CLK", b.Nets)
	}
}

func TestNetTableOverrunningRecordIsFatal(t *testing.T) {
	fb := &fileBuilder{}
	// Declared record size far past the table bound
	fb.addRawNetRecord(le32(1000))
	fb.addRawNetRecord(le32(5))

	if _, err := Decode(fb.build()); err == nil {
		t.Fatalf("Decode() accepted a net record overrunning the table")
	}
}
