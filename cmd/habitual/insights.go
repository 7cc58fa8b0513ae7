package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/display"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Fetch motivational tips for this week's habits",
	Long: `Ask the AI coach for up to 3 short tips based on the viewed week's
habits. Falls back to built-in tips when the API is unavailable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tips := controller.GenerateInsights(cmd.Context())
		display.Tips(os.Stdout, tips)
		return nil
	},
}
