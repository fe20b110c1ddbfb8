package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "parc",
		Short: "Expression parsing tools built on the parc combinators",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput treats arg as a file when one exists under that name and as a
// literal expression otherwise.
func readInput(arg string) (src, file string, err error) {
	info, statErr := os.Stat(arg)
	if statErr != nil || info.IsDir() {
		return arg, "", nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(data), arg, nil
}
