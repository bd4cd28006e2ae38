package main

import (
	"fmt"
	"strings"

	mdserver "github.com/HendryAvila/memdoc/internal/server"
	"github.com/spf13/cobra"
)

// memdoc remember <text>
func newRememberCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remember <text>",
		Short: "Append one entry to the memory document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("nothing to remember")
			}

			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}

			memory, closeFn, err := mdserver.OpenMemory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeFn(); err != nil {
					logger.WithError(err).Warn("closing document backend")
				}
			}()

			if err := memory.AppendEntry(cmd.Context(), text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Remembered in document %s\n", memory.DocumentID())
			return nil
		},
	}
}

// memdoc recall
func newRecallCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "recall",
		Short: "Print every stored memory, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}

			memory, closeFn, err := mdserver.OpenMemory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeFn(); err != nil {
					logger.WithError(err).Warn("closing document backend")
				}
			}()

			text, err := memory.ReadAll(cmd.Context())
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No memories stored yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
