// Command habitual is a personal weekly habit dashboard.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/ai"
	"github.com/habitual-app/habitual/internal/app"
	"github.com/habitual-app/habitual/internal/config"
	"github.com/habitual-app/habitual/internal/storage/sqlite"
)

var (
	cfgPath string
	weekRef string

	controller *app.App
	store      *sqlite.SQLiteStore
)

var rootCmd = &cobra.Command{
	Use:   "habitual",
	Short: "Weekly habit and reminder dashboard",
	Long: `habitual tracks recurring habits and one-off reminders on a
Sunday-aligned weekly dashboard, with completion statistics and
AI-generated motivational tips.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the weekly dashboard.
		return weekCmd.RunE(cmd, args)
	},
}

func setup(ctx context.Context) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	store, err = sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", cfg.DBPath, err)
	}

	insights := ai.New(&ai.Config{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	})

	controller, err = app.New(ctx, &app.Config{
		Store:    store,
		Insights: insights,
	})
	if err != nil {
		return err
	}

	if weekRef != "" {
		if err := controller.ViewWeekOf(weekRef); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&weekRef, "date", "", "view the week containing this date (YYYY-MM-DD)")

	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(remindDoneCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
