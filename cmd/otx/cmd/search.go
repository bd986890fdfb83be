package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/partsdb"
)

var searchLimit int

var indexCmd = &cobra.Command{
	Use:   "index <board_file>",
	Short: "Index a board's components into the parts database",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndex,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed components",
	Long: `Search the parts database with a bleve query string.

Examples:
  otx search GND
  otx search "footprint:QFP*"
  otx search "value:100n"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum hits")
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	db, err := partsdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.IndexBoard(b); err != nil {
		return err
	}
	fmt.Printf("Indexed %d components from %s\n", len(b.Components), b.Name)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	db, err := partsdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ids, err := db.Search(args[0], searchLimit)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		fmt.Println("No matches")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
