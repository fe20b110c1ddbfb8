package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/calc"
	"github.com/dhamidi/parc/config"
	"github.com/dhamidi/parc/lexer"
)

func newTokensCmd() *cobra.Command {
	var grammarPath string
	var keepTrivia bool

	cmd := &cobra.Command{
		Use:           "tokens <file|expr>",
		Short:         "Dump the token stream of an expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, file, err := readInput(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfigOrDefault()
			if err != nil {
				return err
			}
			if grammarPath == "" {
				grammarPath = cfg.Grammar
			}

			var toks []lexer.Token
			if grammarPath != "" {
				grammar, err := lexer.LoadGrammar(grammarPath)
				if err != nil {
					return fmt.Errorf("load grammar: %w", err)
				}
				toks = lexer.NewEBNF(grammar).Scan([]byte(src), file)
			} else {
				toks = lexer.New(calc.LexerConfig()).Scan([]byte(src), file)
			}

			if !keepTrivia {
				skip := make([]parc.Kind, len(cfg.Skip))
				for i, k := range cfg.Skip {
					skip[i] = parc.Kind(k)
				}
				toks = lexer.Filter(toks, skip...)
			}

			for _, tok := range toks {
				fmt.Println(tok)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarPath, "grammar", "", "tokenize with an EBNF grammar file instead of the calc rules")
	cmd.Flags().BoolVar(&keepTrivia, "all", false, "keep whitespace and comment tokens")

	return cmd
}
