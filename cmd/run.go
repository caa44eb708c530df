package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/scholar/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the quiz app (same as running scholar with no subcommand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Gate:    d.gate,
		Quizzes: d.quizzes,
		Config:  d.cfg,
		Logger:  d.logger,
	})
}
