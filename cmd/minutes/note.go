package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNoteCmd(deps **dependencies) *cobra.Command {
	var (
		attendees   string
		agenda      string
		meetingType string
	)

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Create an empty meeting note ahead of a recording",
		Long: "Create a meeting note from the configured template with a pending\n" +
			"transcription marker. Pass the note path to 'transcribe --note' later\n" +
			"to fill it in.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := *deps

			path, err := d.Pipeline.StartNote(metadataFromFlags(attendees, agenda, meetingType))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&attendees, "attendees", "", "comma-separated attendee names")
	cmd.Flags().StringVar(&agenda, "agenda", "", "meeting agenda")
	cmd.Flags().StringVar(&meetingType, "type", "", "template name overriding the configured default")

	return cmd
}

func newTemplatesCmd(deps **dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available note templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := *deps
			for _, name := range d.Catalog.Names() {
				marker := " "
				if name == d.Settings.SelectedTemplate {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
