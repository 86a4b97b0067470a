package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	movalidate "github.com/WKDev/ModOne-sub002/internal/ladder/validate"
)

var checkQuiet bool

var (
	checkPassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	checkFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	checkWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
)

var checkCmd = &cobra.Command{
	Use:   "check <export-file>",
	Short: "Parse and validate a mnemonic export",
	Long: `Parses a mnemonic export file into a ladder program and runs the
semantic checks over it.

Examples:
  modone check plant.csv
  modone check --ranges ranges.toml plant.csv
  modone check --quiet plant.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "suppress individual findings")
}

func runCheck(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	ranges, err := loadRanges()
	if err != nil {
		return err
	}

	report := movalidate.New(movalidate.Options{Ranges: ranges}).Check(prog)

	if !checkQuiet {
		for _, issue := range report.Errors {
			fmt.Printf("%s %s\n", checkFailStyle.Render("error  "), issue)
		}
		for _, issue := range report.Warnings {
			fmt.Printf("%s %s\n", checkWarnStyle.Render("warning"), issue)
		}
		if report.Len() > 0 {
			fmt.Println()
		}
	}

	fmt.Printf("%d networks, %d nodes, %d symbols\n",
		len(prog.Networks), prog.NodeCount(), prog.Symbols.Len())

	if !report.Valid() {
		fmt.Printf("%s %d errors, %d warnings\n",
			checkFailStyle.Render("FAIL"), len(report.Errors), len(report.Warnings))
		return fmt.Errorf("validation failed")
	}

	fmt.Printf("%s %d warnings\n", checkPassStyle.Render("PASS"), len(report.Warnings))
	return nil
}
