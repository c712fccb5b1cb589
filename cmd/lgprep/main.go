// Command lgprep expands the expressions of a sentence fixture into
// disjuncts and reports what the preparation did.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/linkprep"
)

var (
	flagConfig string
	flagFormat string
)

var validFormats = []string{"json", "text"}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "lgprep",
	Short:         "Expand link-grammar expressions into disjuncts",
	Long:          "lgprep loads sentence fixtures in YAML, runs disjunct preparation on them and prints statistics or the resulting disjuncts.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run: prints help.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML preparer configuration")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")

	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(expandCmd)
}

func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be json or text", format)
}

// loadConfig returns the configuration named by --config, or the defaults.
func loadConfig() (linkprep.Config, error) {
	if flagConfig == "" {
		return linkprep.DefaultConfig(), nil
	}
	return linkprep.LoadConfig(flagConfig)
}
