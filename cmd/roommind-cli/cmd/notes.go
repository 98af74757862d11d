package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roommind/internal/application"
	"roommind/internal/application/commands"
	"roommind/internal/domain"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, n := range seed.Notes {
			fmt.Fprintf(out, "%s %s", n.ID, n.Title)
			if len(n.Tags) > 0 {
				fmt.Fprintf(out, " [%s]", strings.Join(n.Tags, ", "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var summarizeAll bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize [note-id]",
	Short: "Summarize a note",
	Long: `Summarize a note into a short actionable bullet list.

Without an API key a placeholder summary is printed.

Examples:
  roommind-cli summarize 1
  roommind-cli summarize --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant := commands.NewNoteAssistant(rt.AI, rt.Logger)
		if summarizeAll {
			for _, n := range assistant.SummarizeAll(cmd.Context(), seed.Notes, 0) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n\n", n.ID, n.Title, n.AISummary)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("note id is required (or use --all)")
		}

		note, err := findNote(args[0])
		if err != nil {
			return err
		}

		res := assistant.Summarize(cmd.Context(), note)
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
		return nil
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks <note-id>",
	Short: "Extract actionable tasks from a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := findNote(args[0])
		if err != nil {
			return err
		}

		tasks := commands.NewNoteAssistant(rt.AI, rt.Logger).ExtractTasksFor(cmd.Context(), note)
		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", t)
		}
		return nil
	},
}

func findNote(id string) (*domain.Note, error) {
	note, ok := domain.FindNote(seed.Notes, id)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, application.ErrNotFound)
	}
	return note, nil
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeAll, "all", false, "summarize every note")

	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(tasksCmd)
}
