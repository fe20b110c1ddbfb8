package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/calc"
	"github.com/dhamidi/parc/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var evaluate bool
	var vars []string

	cmd := &cobra.Command{
		Use:           "parse <file|expr>",
		Short:         "Parse an expression and dump its tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, file, err := readInput(args[0])
			if err != nil {
				return err
			}

			node, err := calc.ParseFile(src, file)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			if evaluate {
				bindings, err := parseVars(vars)
				if err != nil {
					return err
				}
				value, err := calc.Eval(node, bindings)
				if err != nil {
					return fmt.Errorf("evaluate: %w", err)
				}
				fmt.Println(formatValue(value))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree)")
	cmd.Flags().BoolVarP(&evaluate, "eval", "e", false, "also evaluate the expression and print its value")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable binding name=value (repeatable)")

	return cmd
}
