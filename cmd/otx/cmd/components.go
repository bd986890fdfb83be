package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/partsdb"
)

var componentsCmd = &cobra.Command{
	Use:   "components <board_file> [reference]",
	Short: "Show component information",
	Long: `Display decoded components with their resolved rotation and pin
orientations.

Without reference: lists all components
With reference: shows pins, labels and outline for that component

When a parts database exists, per-footprint rotation corrections recorded
with 'otx rotation' are shown alongside the resolved rotation.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runComponents,
}

var rotationCmd = &cobra.Command{
	Use:   "rotation <footprint> <degrees>",
	Short: "Record a rotation correction for a footprint",
	Args:  cobra.ExactArgs(2),
	RunE:  runRotation,
}

func init() {
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(rotationCmd)
}

func runComponents(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	var db *partsdb.DB
	if _, err := os.Stat(dbPath); err == nil {
		if d, err := partsdb.Open(dbPath); err == nil {
			db = d
			defer db.Close()
		}
	}

	if len(args) == 2 {
		comp := b.GetComponent(args[1])
		if comp == nil {
			return fmt.Errorf("component %q not found", args[1])
		}
		printComponent(b, comp, db)
		return nil
	}

	fmt.Printf("%d components:\n", len(b.Components))
	for i := range b.Components {
		c := &b.Components[i]
		fmt.Printf("  %-10s %-16s %-20s pins=%-3d rot=%.1f°%s\n",
			c.Reference, c.Value, c.Footprint, len(c.Pins),
			c.Rotation*180/math.Pi, rotationNote(db, c.Footprint))
	}
	return nil
}

func printComponent(b *board.Board, c *board.Component, db *partsdb.DB) {
	fmt.Printf("%s (%s)\n", c.Reference, c.Footprint)
	fmt.Printf("  Value: %s\n", c.Value)
	fmt.Printf("  Anchor: (%.3f, %.3f)  Size: %.3f x %.3f\n",
		c.Anchor.X, c.Anchor.Y, c.Width, c.Height)
	fmt.Printf("  Rotation: %.1f°%s\n", c.Rotation*180/math.Pi, rotationNote(db, c.Footprint))
	fmt.Printf("  Outline segments: %d, Labels: %d\n", len(c.Outline), len(c.Labels))

	fmt.Printf("  Pins (%d):\n", len(c.Pins))
	for i := range c.Pins {
		pin := &c.Pins[i]
		fmt.Printf("    %-6s net=%-20s %-9s edge=%-8s orient=%s",
			pin.Name, b.NetName(pin.NetID), pin.Shape.Kind, pin.AssignedEdge, pin.Orientation)
		if pin.Reading != "" {
			fmt.Printf("  [%s]", pin.Reading)
		}
		fmt.Println()
	}
}

func rotationNote(db *partsdb.DB, footprint string) string {
	if db == nil {
		return ""
	}
	if deg, ok := db.Rotation(footprint); ok {
		return fmt.Sprintf(" (correction %+.1f°)", deg)
	}
	return ""
}

func runRotation(cmd *cobra.Command, args []string) error {
	var degrees float64
	if _, err := fmt.Sscanf(args[1], "%f", &degrees); err != nil {
		return fmt.Errorf("invalid rotation %q: %w", args[1], err)
	}

	db, err := partsdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SetRotation(args[0], degrees); err != nil {
		return fmt.Errorf("failed to record rotation: %w", err)
	}
	fmt.Printf("Recorded %+.1f° for %s\n", degrees, args[0])
	return nil
}
