package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc/lsp"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity (0 quiet, 2 debug)")

	return cmd
}
