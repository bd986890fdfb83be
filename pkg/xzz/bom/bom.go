// Package bom exports the component list of a decoded board as a bill of
// materials spreadsheet: one row per component with its reference, value,
// footprint, pin count, position, resolved rotation and mounting side.
package bom

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

var header = []string{
	"Designator", "Value", "Footprint", "Pins", "Mid X", "Mid Y", "Rotation", "Side",
}

// Entry is one BOM row.
type Entry struct {
	Reference string
	Value     string
	Footprint string
	Pins      int
	X, Y      float64
	Rotation  float64 // Degrees
	Side      int
}

// Entries flattens a board's components into BOM rows, sorted by reference
// designator for a stable export.
func Entries(b *board.Board) []Entry {
	entries := make([]Entry, 0, len(b.Components))
	for i := range b.Components {
		c := &b.Components[i]
		entries = append(entries, Entry{
			Reference: c.Reference,
			Value:     c.Value,
			Footprint: c.Footprint,
			Pins:      len(c.Pins),
			X:         c.Anchor.X,
			Y:         c.Anchor.Y,
			Rotation:  c.Rotation * 180 / math.Pi,
			Side:      c.Side,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Reference < entries[j].Reference
	})
	return entries
}

// Write exports a board's BOM to an xlsx file.
func Write(dst string, b *board.Board) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, e := range Entries(b) {
		values := []interface{}{
			e.Reference, e.Value, e.Footprint, e.Pins, e.X, e.Y, e.Rotation, e.Side,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	if err := f.SaveAs(dst); err != nil {
		return fmt.Errorf("failed to save %s: %w", dst, err)
	}
	return nil
}
