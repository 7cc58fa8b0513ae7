package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var skipCmd = &cobra.Command{
	Use:   "skip <habit#> <day>",
	Short: "Hide a habit for a single day",
	Long: `Exclude a habit from one day of the viewed week without touching
any other day. Any completion already recorded for that day is
cleared. Skipping an already-skipped day is a no-op.`,
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
		if err := controller.SkipDay(cmd.Context(), h.ID, isoDate); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s %q skipped on %s\n", green("✓"), h.Title, isoDate)
		return nil
	},
}
