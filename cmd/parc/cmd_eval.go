package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/calc"
)

func newEvalCmd() *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:           "eval <file|expr>",
		Short:         "Evaluate an expression and print its value",
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

			bindings, err := parseVars(vars)
			if err != nil {
				return err
			}

			value, err := calc.Eval(node, bindings)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			fmt.Println(formatValue(value))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable binding name=value (repeatable)")

	return cmd
}

func parseVars(vals []string) (map[string]float64, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	bindings := make(map[string]float64, len(vals))
	for _, v := range vals {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable binding %q (want name=value)", v)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for variable %s: %w", name, err)
		}
		bindings[name] = f
	}
	return bindings, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
