package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <habit#> <day>",
	Short: "Toggle a habit's completion for a day",
	Long: `Flip whether the habit was done on the given day. The day is a
weekday name within the viewed week (Sun..Sat) or an ISO date.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := habitRow(args[0])
		if err != nil {
			return err
		}
		isoDate, err := resolveDay(args[1])
		if err != nil {
			return err
		}
		if err := controller.ToggleCompletion(cmd.Context(), h.ID, isoDate); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		state := "not done"
		if controller.Collection().Find(h.ID).CompletedDates.Has(isoDate) {
			state = "done"
		}
		fmt.Printf("%s %q is now %s on %s\n", green("✓"), h.Title, state, isoDate)
		return nil
	},
}

var remindDoneCmd = &cobra.Command{
	Use:   "remind-done <reminder#>",
	Short: "Toggle a reminder's done state",
	Long: `Mark a reminder done as of today, or clear it if already done.
Reminders always complete on the current date, never on a viewed day.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := reminderRow(args[0])
		if err != nil {
			return err
		}
		if err := controller.ToggleReminderDone(cmd.Context(), r.ID); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		state := "cleared"
		if controller.Collection().Find(r.ID).Done() {
			state = "done"
		}
		fmt.Printf("%s Reminder %q %s\n", green("✓"), r.Title, state)
		return nil
	},
}
