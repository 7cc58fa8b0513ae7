package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/display"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly dashboard",
	Long: `Display the habit grid, reminders, and completion statistics for
the viewed week. Use --date to view a different week.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		display.Week(os.Stdout, controller.Window(),
			controller.Habits(), controller.Reminders(), controller.Stats())
		return nil
	},
}
