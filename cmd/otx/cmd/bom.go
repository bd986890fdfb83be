package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/bom"
)

var bomOutput string

var bomCmd = &cobra.Command{
	Use:   "bom <board_file>",
	Short: "Export a BOM spreadsheet",
	Long:  `Export the decoded component list as a bill-of-materials xlsx file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBOM,
}

func init() {
	bomCmd.Flags().StringVarP(&bomOutput, "output", "o", "bom.xlsx", "output file")
	rootCmd.AddCommand(bomCmd)
}

func runBOM(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	if err := bom.Write(bomOutput, b); err != nil {
		return err
	}
	fmt.Printf("Wrote %d components to %s\n", len(b.Components), bomOutput)
	return nil
}
