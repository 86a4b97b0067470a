package cmd

import (
	"github.com/spf13/cobra"

	movalidate "github.com/WKDev/ModOne-sub002/internal/ladder/validate"
	"github.com/WKDev/ModOne-sub002/internal/tui/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <export-file>",
	Short: "Browse a program interactively",
	Long: `Builds a ladder program from a mnemonic export and opens the
interactive viewer: ladder art network by network with the validation
report alongside.

Examples:
  modone view plant.csv
  modone view --ranges ranges.yaml plant.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	ranges, err := loadRanges()
	if err != nil {
		return err
	}
	report := movalidate.New(movalidate.Options{Ranges: ranges}).Check(prog)

	return viewer.Run(prog, report)
}
