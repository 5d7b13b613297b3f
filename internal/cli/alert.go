package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Manage alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())
	cmd.AddCommand(newAlertDeliverCmd())
	cmd.AddCommand(newAlertAcknowledgeCmd())
	cmd.AddCommand(newAlertResolveCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alerts, err := apiClient.Alerts().List(ctx, &client.ListOptions{Skip: skip, Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(alerts)
			}

			t := NewTable("ID", "TYPE", "SEVERITY", "STATUS", "TITLE")
			for _, a := range alerts {
				t.AddRow(
					a.ID,
					a.Type,
					formatSeverity(a.Severity),
					formatStatus(a.Status),
					truncate(a.Title, 50),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of alerts to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of alerts to return")

	return cmd
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			alert, err := apiClient.Alerts().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(alert)
			}

			fmt.Printf("ID:          %s\n", alert.ID)
			fmt.Printf("Type:        %s\n", alert.Type)
			fmt.Printf("Severity:    %s\n", formatSeverity(alert.Severity))
			fmt.Printf("Status:      %s\n", alert.Status)
			fmt.Printf("Title:       %s\n", alert.Title)
			fmt.Printf("Description: %s\n", alert.Description)
			fmt.Printf("Triggered:   %s\n", alert.TriggeredAt.Format("2006-01-02 15:04:05"))
			if alert.ResolvedAt != nil {
				fmt.Printf("Resolved:    %s\n", alert.ResolvedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newAlertDeliverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deliver <id>",
		Short: "Deliver an alert to the configured notification channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			res, err := apiClient.Alerts().Deliver(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to deliver alert: %w", err)
			}

			if res.Delivered {
				fmt.Printf("Alert %s delivered\n", res.AlertID)
			} else {
				fmt.Printf("Alert %s recorded but no channel accepted it\n", res.AlertID)
			}
			return nil
		},
	}
}

func newAlertAcknowledgeCmd() *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "acknowledge <id>",
		Short: "Acknowledge an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := apiClient.Alerts().Acknowledge(ctx, args[0], actor); err != nil {
				return fmt.Errorf("failed to acknowledge alert: %w", err)
			}

			fmt.Printf("Alert %s acknowledged\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "who is acknowledging the alert")

	return cmd
}

func newAlertResolveCmd() *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := apiClient.Alerts().Resolve(ctx, args[0], actor); err != nil {
				return fmt.Errorf("failed to resolve alert: %w", err)
			}

			fmt.Printf("Alert %s resolved\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "who is resolving the alert")

	return cmd
}
