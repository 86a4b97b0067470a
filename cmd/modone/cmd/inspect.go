package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	moast "github.com/WKDev/ModOne-sub002/internal/ladder/ast"
	mogrid "github.com/WKDev/ModOne-sub002/internal/ladder/grid"
	morender "github.com/WKDev/ModOne-sub002/internal/ladder/render"
)

var (
	inspectSymbols bool
	inspectLadder  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <export-file>",
	Short: "Show a program summary",
	Long: `Builds a ladder program from a mnemonic export and prints its
structure: per-network dimensions and node counts, and optionally the
symbol table and ladder art.

Examples:
  modone inspect plant.csv
  modone inspect --symbols plant.csv
  modone inspect --ladder plant.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&inspectSymbols, "symbols", "s", false, "list the symbol table")
	inspectCmd.Flags().BoolVarP(&inspectLadder, "ladder", "l", false, "render networks as ladder art")
}

func runInspect(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Program:  %s\n", prog.Name)
	fmt.Printf("Id:       %s\n", prog.ID)
	if prog.Author != "" {
		fmt.Printf("Author:   %s\n", prog.Author)
	}
	if prog.Version != "" {
		fmt.Printf("Version:  %s\n", prog.Version)
	}
	fmt.Printf("Built:    %s\n", prog.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Networks: %d\n", len(prog.Networks))
	fmt.Printf("Nodes:    %d\n", prog.NodeCount())

	collector := moast.NewAddressCollector()
	for _, net := range prog.Networks {
		for _, n := range net.Nodes() {
			collector.Collect(n)
		}
	}
	fmt.Printf("Devices:  %d\n", len(collector.Addresses()))
	fmt.Printf("Symbols:  %d\n", prog.Symbols.Len())
	fmt.Println()

	for _, net := range prog.Networks {
		line := fmt.Sprintf("network %-4d %2dx%-2d  %d nodes",
			net.Step, mogrid.Width(net), mogrid.Height(net), len(net.Nodes()))
		if net.Comment != "" {
			line += "  " + net.Comment
		}
		fmt.Println(line)
	}

	if inspectSymbols && prog.Symbols.Len() > 0 {
		fmt.Println()
		for _, sym := range prog.Symbols.All() {
			fmt.Printf("%-12s %s\n", sym.Address, sym.Comment)
		}
	}

	if inspectLadder {
		fmt.Println()
		fmt.Print(morender.Program(prog))
	}
	return nil
}
