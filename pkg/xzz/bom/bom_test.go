package bom

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

func testBoard() *board.Board {
	b := board.NewBoard("bomtest")
	b.Components = []board.Component{
		{
			Reference: "U1",
			Value:     "STM32F103",
			Footprint: "LQFP48",
			Anchor:    board.Position{X: 12.5, Y: -3},
			Rotation:  math.Pi / 2,
			Side:      1,
			Pins:      make([]board.Pin, 48),
		},
		{
			Reference: "C3",
			Value:     "100n",
			Footprint: "C0402",
			Anchor:    board.Position{X: 1, Y: 2},
			Pins:      make([]board.Pin, 2),
		},
	}
	return b
}

func TestEntriesSortedByReference(t *testing.T) {
	entries := Entries(testBoard())
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Reference != "C3" || entries[1].Reference != "U1" {
		t.Errorf("order = %s, %s; want C3, U1", entries[0].Reference, entries[1].Reference)
	}

	u1 := entries[1]
	if u1.Pins != 48 || u1.X != 12.5 || u1.Y != -3 {
		t.Errorf("U1 entry = %+v", u1)
	}
	if diff := math.Abs(u1.Rotation - 90); diff > 1e-9 {
		t.Errorf("U1 rotation = %g degrees, want 90", u1.Rotation)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "bom.xlsx")
	if err := Write(dst, testBoard()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(dst)
	if err != nil {
		t.Fatalf("failed to reopen export: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	checks := []struct {
		cell string
		want string
	}{
		{"A1", "Designator"},
		{"G1", "Rotation"},
		{"A2", "C3"},
		{"B2", "100n"},
		{"C2", "C0402"},
		{"D2", "2"},
		{"A3", "U1"},
		{"D3", "48"},
		{"H3", "1"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestWriteEmptyBoard(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := Write(dst, board.NewBoard("empty")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f, err := excelize.OpenFile(dst)
	if err != nil {
		t.Fatalf("failed to reopen export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}
