package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newPasteCmd(deps **dependencies) *cobra.Command {
	var (
		attendees   string
		agenda      string
		meetingType string
	)

	cmd := &cobra.Command{
		Use:   "paste [transcript-file]",
		Short: "Synthesize a note from an existing transcript",
		Long: "Read a transcript from a file (or stdin when no file is given),\n" +
			"analyze it, and write a summarized meeting note. The raw transcript\n" +
			"text is not reproduced in the note.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := *deps

			var raw []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			result, err := d.Pipeline.ProcessPasted(cmd.Context(), string(raw),
				metadataFromFlags(attendees, agenda, meetingType))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note written: %s\n", result.NotePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&attendees, "attendees", "", "comma-separated attendee names")
	cmd.Flags().StringVar(&agenda, "agenda", "", "meeting agenda")
	cmd.Flags().StringVar(&meetingType, "type", "", "template name overriding the configured default")

	return cmd
}
