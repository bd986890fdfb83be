package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var diagCmd = &cobra.Command{
	Use:   "diag <board_file>",
	Short: "Dump the diagnostic reading table",
	Long: `Print the per-pin or per-net diagnostic readings carried by the
file's optional trailing diagnostic section. Boards without one print an
empty table.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiag,
}

func init() {
	rootCmd.AddCommand(diagCmd)
}

func runDiag(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	if len(b.Diagnostics) == 0 {
		fmt.Println("No diagnostic section")
		return nil
	}

	outer := make([]string, 0, len(b.Diagnostics))
	for k := range b.Diagnostics {
		outer = append(outer, k)
	}
	sort.Strings(outer)

	for _, o := range outer {
		readings := b.Diagnostics[o]
		inner := make([]string, 0, len(readings))
		for k := range readings {
			inner = append(inner, k)
		}
		sort.Strings(inner)
		for _, in := range inner {
			fmt.Printf("%s\t%s\t%s\n", o, in, readings[in])
		}
	}
	return nil
}
