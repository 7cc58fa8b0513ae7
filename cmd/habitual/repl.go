package main

import (
	"github.com/spf13/cobra"

	"github.com/habitual-app/habitual/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive dashboard shell",
	Long: `Open an interactive shell with week navigation, habit mutations,
and asynchronous insight fetching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repl.New(controller)
		if err != nil {
			return err
		}
		return r.Run(cmd.Context())
	},
}
