package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/scholar/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded backend calls",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend call events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryEvents(cmd.Context(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-13s  %-30s  %-6s  %s\n",
			"ID", "Timestamp", "Kind", "Subject", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 90))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			subject := e.Subject
			if len(subject) > 30 {
				subject = subject[:30]
			}
			fmt.Printf("%-5d  %-19s  %-13s  %-30s  %-6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				subject,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	eventsListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	eventsListCmd.Flags().String("kind", "", "Only show events of this kind (e.g. auth.sign_in)")

	eventsCmd.AddCommand(eventsListCmd)
}
