package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/types"
)

var (
	addKind     string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a habit or reminder",
	Long: `Create a new habit (tracked per day) or reminder (single done
flag). The item is dated to the viewed week's first day.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := types.Kind(addKind)
		if !kind.IsValid() {
			return fmt.Errorf("unknown kind %q (use habit or reminder)", addKind)
		}
		title := strings.Join(args, " ")
		category := types.Category(addCategory)

		if err := controller.AddHabit(cmd.Context(), title, kind, category); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Added %s %q to week of %s\n",
			green("✓"), kind, strings.TrimSpace(title), controller.Window().Start())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addKind, "kind", "habit", "habit or reminder")
	addCmd.Flags().StringVar(&addCategory, "category", string(types.CategoryOther),
		"Health, Productivity, Mindfulness, Learning, Fitness, or Other")
}
