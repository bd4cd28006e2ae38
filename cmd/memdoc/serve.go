package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mdserver "github.com/HendryAvila/memdoc/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}

			// Graceful shutdown on interrupt.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, cleanup, err := mdserver.New(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			return mdserver.Serve(ctx, s, cfg, logger, os.Stdin, os.Stdout)
		},
	}
}
