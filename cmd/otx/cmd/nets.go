package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var netsCmd = &cobra.Command{
	Use:   "nets <board_file> [net_name]",
	Short: "Show net information",
	Long: `Display information about nets in a board file.

Without net_name: lists all nets with pin/trace/via counts
With net_name: shows detailed connectivity for that specific net`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		net := b.GetNetByName(args[1])
		if net == nil {
			return fmt.Errorf("net %q not found", args[1])
		}
		info := b.GetNetInfo(net.ID)

		fmt.Printf("Net %d: %s\n", net.ID, net.Name)
		fmt.Printf("  Pins: %d, Traces: %d, Vias: %d, Arcs: %d\n",
			len(info.Pins), len(info.Traces), len(info.Vias), len(info.Arcs))
		for _, np := range info.Pins {
			fmt.Printf("  %s.%s", np.Component.Reference, np.Pin.Name)
			if np.Pin.Reading != "" {
				fmt.Printf("  [%s]", np.Pin.Reading)
			}
			fmt.Println()
		}
		return nil
	}

	ids := make([]int, 0, len(b.Nets))
	for id := range b.Nets {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("%d nets:\n", len(ids))
	for _, id := range ids {
		net := b.Nets[id]
		fmt.Printf("  %4d %-24s pins=%d traces=%d vias=%d\n",
			net.ID, net.Name,
			len(b.GetNetPins(id)), len(b.GetNetTraces(id)), len(b.GetNetVias(id)))
	}
	return nil
}
