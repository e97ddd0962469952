package main

import (
	"strings"

	"github.com/spf13/cobra"

	configpkg "github.com/minhyannv/ai-playground/pkg/config"
)

const rootLongDesc string = `Chat with a Mistral model from the terminal.

The API key is read from MISTRAL_API_KEY (a .env file in the working
directory is loaded first) and checked with one probe request before
the session starts. Type 'quit' at any time to leave.

Examples:
  ai-playground
  ai-playground --logLevel DEBUG
  ai-playground game --games-file games.yaml`

const gameLongDesc string = `Pick a game from a YAML catalog, then chat with the model
using the chosen rules as the first message.`

func newRootCmd(a *app) *cobra.Command {
	flags := cliFlags{}

	root := &cobra.Command{
		Use:           "ai-playground",
		Short:         "Terminal chat client for the Mistral API",
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runChat(cmd.Context(), flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "logLevel", configpkg.DefaultLogLevel,
		"Log level, one of "+strings.Join(configpkg.LogLevels, ", "))
	root.PersistentFlags().StringVar(&flags.logDir, "logDir", configpkg.DefaultLogDir, "Directory for the log file")

	root.AddCommand(newGameCmd(a, &flags))
	root.AddCommand(newValidateCmd(a, &flags))
	return root
}

func newGameCmd(a *app, flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Choose a game and let the model play it with you",
		Long:  gameLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGame(cmd.Context(), *flags)
		},
	}
	cmd.Flags().StringVar(&flags.gamesFile, "games-file", configpkg.DefaultGamesFile, "YAML game catalog")
	return cmd
}

func newValidateCmd(a *app, flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the API key with a single probe request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runValidate(cmd.Context(), *flags)
		},
	}
}
