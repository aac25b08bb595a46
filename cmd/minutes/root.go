package main

import (
	"github.com/spf13/cobra"

	"github.com/notedly/minutes/version"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		vaultDir   string
		debug      bool
		deps       *dependencies
	)

	rootCmd := &cobra.Command{
		Use:   "minutes",
		Short: "Transcribe meeting audio and synthesize markdown notes",
		Long: "minutes uploads meeting recordings for transcription, assembles a\n" +
			"timestamped transcript, optionally extracts key points and action items\n" +
			"with an LLM, and writes the result as a markdown note.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			deps, err = setup(configFile, vaultDir, debug)
			return err
		},
	}

	rootCmd.Version = version.Get().String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&vaultDir, "vault", ".", "vault directory notes are written into")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTranscribeCmd(&deps))
	rootCmd.AddCommand(newPasteCmd(&deps))
	rootCmd.AddCommand(newNoteCmd(&deps))
	rootCmd.AddCommand(newTemplatesCmd(&deps))

	return rootCmd
}
