package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	molog "github.com/WKDev/ModOne-sub002/foundation/core/log"
	mobuilder "github.com/WKDev/ModOne-sub002/internal/ladder/builder"
	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	moprogram "github.com/WKDev/ModOne-sub002/internal/ladder/program"
	"github.com/WKDev/ModOne-sub002/internal/modbus"
)

var (
	rangesFile  string
	rulesFile   string
	verbose     bool
	progAuthor  string
	progVersion string
)

var rootCmd = &cobra.Command{
	Use:   "modone",
	Short: "ModOne - ladder logic toolchain",
	Long: `ModOne parses PLC mnemonic exports into ladder programs, validates
them, and maps native device addresses into the Modbus address spaces.

Commands:
  check    - parse and validate a mnemonic export
  inspect  - show a program summary
  map      - translate device addresses to and from Modbus targets
  view     - browse a program interactively`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			molog.SetDefault(molog.NewWithConfig(molog.Config{
				Level:  molog.LevelDebug,
				Format: molog.FormatText,
				Output: os.Stderr,
			}))
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rangesFile, "ranges", "", "device range table (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Modbus mapping rule table (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&progAuthor, "author", "", "author recorded on the built program")
	rootCmd.PersistentFlags().StringVar(&progVersion, "program-version", "", "version recorded on the built program")
}

// loadProgram reads and builds a mnemonic export file
func loadProgram(path string) (*moprogram.Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	b := mobuilder.New(mobuilder.Options{
		Name:    filepath.Base(path),
		Author:  progAuthor,
		Version: progVersion,
	})
	return b.Build(string(content))
}

// loadRanges returns the configured or default device range table
func loadRanges() (modevice.Ranges, error) {
	if rangesFile == "" {
		return modevice.DefaultRanges(), nil
	}
	return modevice.LoadRanges(rangesFile)
}

// loadRules returns the configured or default Modbus rule table
func loadRules() (modbus.Rules, error) {
	if rulesFile == "" {
		return modbus.DefaultRules(), nil
	}
	return modbus.LoadRules(rulesFile)
}
