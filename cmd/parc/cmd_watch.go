package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/calc"
	"github.com/dhamidi/parc/config"
	"github.com/dhamidi/parc/watch"
)

func newWatchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "watch <path>",
		Short:         "Reparse expression files as they change",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.LoadConfig(configPath)
			} else {
				cfg, err = config.LoadConfigOrDefault()
			}
			if err != nil {
				return err
			}

			w, err := watch.New(cfg, reportReparse)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Add(args[0]); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "configuration file (default: parc.yaml when present)")

	return cmd
}

func reportReparse(path string, node *calc.Node, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %s\n", path, node)
}
