package cmd

import (
	"fmt"
	"os"

	toml "github.com/djoezeke/gotoml"
	"github.com/djoezeke/gotoml/internal/debugfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "parse TOML and print the canonical JSON-shaped dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := loadInput(args)
		if err != nil {
			return err
		}
		root, err := toml.Parse(src)
		if err != nil {
			if verbose {
				logrus.WithError(err).Error("decode failed")
			}
			return err
		}
		out, err := toml.Dump(root)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		if verbose {
			fmt.Fprintln(os.Stderr, debugfmt.Dump(root))
		}
		return nil
	},
}
