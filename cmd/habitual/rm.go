package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/types"
)

var rmKind string

var rmCmd = &cobra.Command{
	Use:   "rm <#>",
	Short: "Archive or delete a habit",
	Long: `Remove a habit or reminder from the dashboard. An item with
completions recorded before the viewed week is archived so its
history stays readable; one without is deleted outright.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			row *types.Habit
			err error
		)
		switch rmKind {
		case "habit":
			row, err = habitRow(args[0])
		case "reminder":
			row, err = reminderRow(args[0])
		default:
			return fmt.Errorf("unknown kind %q (use habit or reminder)", rmKind)
		}
		if err != nil {
			return err
		}

		if err := controller.Remove(cmd.Context(), row.ID); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		if h := controller.Collection().Find(row.ID); h != nil {
			fmt.Printf("%s Archived %q as of %s (history kept)\n", green("✓"), row.Title, h.ArchivedAt)
		} else {
			fmt.Printf("%s Deleted %q\n", green("✓"), row.Title)
		}
		return nil
	},
}

func init() {
	rmCmd.Flags().StringVar(&rmKind, "kind", "habit", "habit or reminder")
}
