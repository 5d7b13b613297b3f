package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit ledger",
	}

	cmd.AddCommand(newAuditListCmd())
	cmd.AddCommand(newAuditGetCmd())

	return cmd
}

func newAuditListCmd() *cobra.Command {
	var incidentID, alertID, eventType string
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := apiClient.Audit().List(ctx, &client.AuditListOptions{
				ListOptions: client.ListOptions{Skip: skip, Limit: limit},
				IncidentID:  incidentID,
				AlertID:     alertID,
				EventType:   eventType,
			})
			if err != nil {
				return fmt.Errorf("failed to list audit entries: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(entries)
			}

			t := NewTable("ID", "EVENT", "ALERT", "INCIDENT", "ACTOR", "TIME")
			for _, e := range entries {
				t.AddRow(
					e.ID,
					e.EventType,
					e.AlertID,
					e.IncidentID,
					e.Actor,
					e.EventTime.Format("2006-01-02 15:04:05"),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&incidentID, "incident", "", "filter by incident ID")
	cmd.Flags().StringVar(&alertID, "alert", "", "filter by alert ID")
	cmd.Flags().StringVar(&eventType, "event-type", "", "filter by event type")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries to return")

	return cmd
}

func newAuditGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a single ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := apiClient.Audit().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get audit entry: %w", err)
			}

			return printOutput(e)
		},
	}
}
