package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <board_file>",
	Short: "Show board summary",
	Long:  `Decode an XZZPCB file and print a summary of the board model.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("✓ Loaded board successfully\n")
	fmt.Printf("  Name: %s\n", b.Name)
	fmt.Printf("  Size: %.2f x %.2f\n", b.Width, b.Height)
	fmt.Printf("  Nets: %d\n", len(b.Nets))
	fmt.Printf("  Components: %d\n", len(b.Components))
	fmt.Printf("  Traces: %d\n", len(b.Traces))
	fmt.Printf("  Vias: %d\n", len(b.Vias))
	fmt.Printf("  Arcs: %d\n", len(b.Arcs))
	fmt.Printf("  Text labels: %d\n", len(b.Texts))
	fmt.Printf("  Diagnostic entries: %d\n", len(b.Diagnostics))

	if verbose {
		fmt.Printf("\nLayers:\n")
		for _, layer := range b.Layers {
			vis := " "
			if layer.Visible {
				vis = "*"
			}
			fmt.Printf("  [%s] %2d %-14s %s\n", vis, layer.ID, layer.Name, layer.Type)
		}
	}

	return nil
}
