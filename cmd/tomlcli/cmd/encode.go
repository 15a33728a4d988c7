package cmd

import (
	"encoding/json"
	"fmt"

	toml "github.com/djoezeke/gotoml"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "parse tagged JSON and print TOML source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := loadInput(args)
		if err != nil {
			return err
		}
		var tagged map[string]any
		if err := json.Unmarshal(data, &tagged); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
		root, err := toml.FromTaggedJSON(tagged)
		if err != nil {
			return err
		}
		fmt.Print(toml.Format(root))
		return nil
	},
}
