// memdoc: weather and conversation-memory MCP server
//
// An MCP server that answers US weather questions and keeps a running
// memory of past conversations in a single document.
//
// Usage:
//
//	memdoc serve            # Start MCP server (stdio transport)
//	memdoc remember <text>  # Append one entry to the memory document
//	memdoc recall           # Print the memory document
//	memdoc version          # Print the version
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/memdoc/internal/config"
	"github.com/HendryAvila/memdoc/internal/logging"
	mdserver "github.com/HendryAvila/memdoc/internal/server"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "memdoc",
		Short: "Weather and conversation-memory MCP server",
		Long: heredoc.Doc(`
			memdoc is an MCP server with four tools:

			  get-alerts      active weather alerts for a US state
			  get-forecast    forecast for a latitude/longitude
			  remember_this   append a conversation summary to the memory document
			  suggest_topic   suggest a topic from the stored memories

			Configuration comes from flags, the environment and an optional .env file:

			  GOOGLE_APPLICATION_CREDENTIALS  service-account credentials file
			  DOCUMENT_ID                     memory document ID
			  MEMDOC_BACKEND                  google (default) or sqlite
			  MEMDOC_SQLITE_PATH              database file for the sqlite backend

			Add to your AI tool's MCP config:

			  {
			    "mcpServers": {
			      "memory": {
			        "command": "memdoc",
			        "args": ["serve"]
			      }
			    }
			  }
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
	config.AddFlags(root.PersistentFlags())

	load := func(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
		cfg, err := config.Load(config.Options{Flags: cmd.Flags(), EnvFile: envFile})
		if err != nil {
			return nil, nil, err
		}
		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return nil, nil, err
		}
		return cfg, logger, nil
	}

	root.AddCommand(
		newServeCmd(load),
		newRememberCmd(load),
		newRecallCmd(load),
		newVersionCmd(),
	)
	return root
}

// loadFunc resolves configuration and the logger for a subcommand.
type loadFunc func(cmd *cobra.Command) (*config.Config, *logrus.Logger, error)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "memdoc v%s\n", mdserver.Version)
		},
	}
}
