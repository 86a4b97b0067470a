package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	modevice "github.com/WKDev/ModOne-sub002/internal/ladder/device"
	"github.com/WKDev/ModOne-sub002/internal/modbus"
)

var (
	mapReverse bool
	mapValue   bool
)

var mapCmd = &cobra.Command{
	Use:   "map <address>...",
	Short: "Translate device addresses to and from Modbus targets",
	Long: `Maps native device addresses into the Modbus address spaces, or,
with --reverse, maps Modbus target addresses back to every native
candidate.

Examples:
  modone map M6144 K0000 D0100.8
  modone map --reverse CO:8192
  modone map --value T0005 C0010
  modone map --rules rules.toml M0000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().BoolVarP(&mapReverse, "reverse", "r", false, "reverse-map Modbus targets to device candidates")
	mapCmd.Flags().BoolVar(&mapValue, "value", false, "map timer/counter current-value registers")
}

func runMap(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	ranges, err := loadRanges()
	if err != nil {
		return err
	}
	mapper := modbus.New(modbus.Options{Rules: rules, Ranges: ranges})

	for _, arg := range args {
		if mapReverse {
			if err := mapFromTarget(mapper, arg); err != nil {
				return err
			}
			continue
		}
		if err := mapToTarget(mapper, arg); err != nil {
			return err
		}
	}
	return nil
}

func mapToTarget(mapper *modbus.Mapper, arg string) error {
	addr, err := modevice.Parse(arg)
	if err != nil {
		return err
	}

	var target modbus.TargetAddress
	if mapValue {
		switch addr.Type {
		case modevice.TypeT:
			target, err = mapper.TimerValue(addr)
		case modevice.TypeC:
			target, err = mapper.CounterValue(addr)
		default:
			return fmt.Errorf("%s: --value applies to timer and counter addresses", arg)
		}
	} else {
		target, err = mapper.ToTarget(addr)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%-12s -> %s\n", addr, target)
	return nil
}

func mapFromTarget(mapper *modbus.Mapper, arg string) error {
	target, err := modbus.ParseTarget(arg)
	if err != nil {
		return err
	}

	candidates := mapper.FromTarget(target)
	if len(candidates) == 0 {
		fmt.Printf("%-12s -> no candidates\n", target)
		return nil
	}

	for _, addr := range candidates {
		fmt.Printf("%-12s -> %s\n", target, addr)
	}
	return nil
}
