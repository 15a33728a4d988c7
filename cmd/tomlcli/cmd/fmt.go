package cmd

import (
	"fmt"

	toml "github.com/djoezeke/gotoml"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "parse TOML and print normalized TOML source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := loadInput(args)
		if err != nil {
			return err
		}
		root, err := toml.Parse(data)
		if err != nil {
			return err
		}
		fmt.Print(toml.Format(root))
		return nil
	},
}
