package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz"
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "otx",
	Short: "OpenTraceXZZ - XZZPCB board file tools",
	Long: `OpenTraceXZZ (otx) decodes proprietary XZZPCB board files and provides
inspection and export tools over the decoded board model:
  - board, net and component inspection
  - BOM export to spreadsheets
  - a searchable local parts database
  - diagnostic reading dumps

Examples:
  otx info board.pcb                  # Board summary
  otx nets board.pcb GND              # Show one net
  otx components board.pcb U1         # Show one component
  otx bom board.pcb -o bom.xlsx       # Export a BOM spreadsheet
  otx index board.pcb                 # Index components for search
  otx search "footprint:QFP*"         # Query the parts database`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file (layer overrides)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "parts database directory")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".otx"
	}
	return home + string(os.PathSeparator) + ".otx"
}

// loadBoard decodes a board file and applies any configured layer overrides.
// All subcommands funnel through here.
func loadBoard(path string) (*board.Board, error) {
	b, err := xzz.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading board: %w", err)
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Apply(b)
	}

	return b, nil
}
