package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedly/minutes/audio"
	"github.com/notedly/minutes/notes"
	"github.com/notedly/minutes/pipeline"
)

func newTranscribeCmd(deps **dependencies) *cobra.Command {
	var (
		notePath    string
		attendees   string
		agenda      string
		meetingType string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a recording and write a meeting note",
		Long: "Transcribe an audio file and write the result as a markdown note.\n" +
			"Large recordings are split into chunks automatically. With --note, the\n" +
			"transcript is merged into an existing note instead of creating a new one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := *deps

			clip, err := audio.LoadClip(args[0])
			if err != nil {
				return err
			}

			d.Log.Info("processing recording", map[string]any{
				"file":     clip.Name,
				"size_mb":  fmt.Sprintf("%.1f", clip.SizeMB()),
				"duration": audio.FormatDuration(audio.EstimateDuration(clip.Size())),
			})

			result, err := d.Pipeline.ProcessRecording(cmd.Context(), clip, pipeline.ProcessOptions{
				Metadata:         metadataFromFlags(attendees, agenda, meetingType),
				ExistingNotePath: notePath,
			})
			if err != nil {
				return err
			}

			if result.ChunksFailed > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Transcribed with %d of %d chunks failed\n",
					result.ChunksFailed, result.ChunksTotal)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note written: %s\n", result.NotePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&notePath, "note", "", "existing note to merge the transcript into")
	cmd.Flags().StringVar(&attendees, "attendees", "", "comma-separated attendee names")
	cmd.Flags().StringVar(&agenda, "agenda", "", "meeting agenda")
	cmd.Flags().StringVar(&meetingType, "type", "", "template name overriding the configured default")

	return cmd
}

func metadataFromFlags(attendees, agenda, meetingType string) *notes.Metadata {
	if attendees == "" && agenda == "" && meetingType == "" {
		return nil
	}
	return &notes.Metadata{
		Attendees:   attendees,
		Agenda:      agenda,
		MeetingType: meetingType,
	}
}
