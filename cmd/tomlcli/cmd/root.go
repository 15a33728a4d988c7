package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tomlcli",
		Short:        "tomlcli",
		SilenceUsage: true,
		Long:         `CLI front-end for gotoml: decode TOML to canonical JSON, encode canonical JSON back to TOML, or reformat TOML.`,
	}

	verbose bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode failures and print the parsed AST after a successful decode")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(fmtCmd)
}

// loadInput reads the named file, or stdin if no file was given.
func loadInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
