package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newIncidentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Manage incidents",
	}

	cmd.AddCommand(newIncidentListCmd())
	cmd.AddCommand(newIncidentGetCmd())
	cmd.AddCommand(newIncidentCreateCmd())
	cmd.AddCommand(newIncidentStatusCmd())
	cmd.AddCommand(newIncidentCloseCmd())
	cmd.AddCommand(newIncidentArchiveCmd())

	return cmd
}

func newIncidentListCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			incidents, err := apiClient.Incidents().List(ctx, &client.ListOptions{Skip: skip, Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list incidents: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(incidents)
			}

			t := NewTable("ID", "SEVERITY", "STATUS", "TITLE", "CREATED")
			for _, in := range incidents {
				t.AddRow(
					in.ID,
					formatSeverity(in.Severity),
					formatStatus(in.Status),
					truncate(in.Title, 50),
					in.CreatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of incidents to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of incidents to return")

	return cmd
}

func newIncidentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get incident details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := apiClient.Incidents().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get incident: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(in)
			}

			fmt.Printf("ID:          %s\n", in.ID)
			fmt.Printf("Title:       %s\n", in.Title)
			fmt.Printf("Description: %s\n", in.Description)
			fmt.Printf("Severity:    %s\n", formatSeverity(in.Severity))
			fmt.Printf("Status:      %s\n", in.Status)
			fmt.Printf("Created:     %s\n", in.CreatedAt.Format("2006-01-02 15:04:05"))
			if in.ClosedAt != nil {
				fmt.Printf("Closed:      %s\n", in.ClosedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newIncidentCreateCmd() *cobra.Command {
	var description, severity, createdBy string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Open a new incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := apiClient.Incidents().Create(ctx, client.CreateIncidentRequest{
				Title:       args[0],
				Description: description,
				Severity:    severity,
				CreatedBy:   createdBy,
			})
			if err != nil {
				return fmt.Errorf("failed to create incident: %w", err)
			}

			fmt.Printf("Incident %s created\n", in.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "incident description")
	cmd.Flags().StringVar(&severity, "severity", "", "incident severity: critical, warning, info")
	cmd.Flags().StringVar(&createdBy, "created-by", "", "who is opening the incident")

	return cmd
}

func newIncidentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update incident status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := apiClient.Incidents().UpdateStatus(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to update incident status: %w", err)
			}

			fmt.Printf("Incident %s is now %s\n", in.ID, in.Status)
			return nil
		},
	}
}

func newIncidentCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := apiClient.Incidents().Close(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to close incident: %w", err)
			}

			fmt.Printf("Incident %s closed\n", args[0])
			return nil
		},
	}
}

func newIncidentArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive an incident, hiding it from listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := apiClient.Incidents().Archive(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to archive incident: %w", err)
			}

			fmt.Printf("Incident %s archived\n", args[0])
			return nil
		},
	}
}
