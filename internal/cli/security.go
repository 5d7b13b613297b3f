package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newSecurityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Report and inspect security events",
	}

	cmd.AddCommand(newSecurityDetectCmd())
	cmd.AddCommand(newSecurityTypesCmd())

	return cmd
}

func newSecurityDetectCmd() *cobra.Command {
	var resourceID, actor string

	cmd := &cobra.Command{
		Use:   "detect <event-type>",
		Short: "Report a security event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			alert, err := apiClient.SecurityEvents().Detect(ctx, client.DetectEventRequest{
				EventType:  args[0],
				ResourceID: resourceID,
				Actor:      actor,
			})
			if err != nil {
				return fmt.Errorf("failed to report security event: %w", err)
			}

			fmt.Printf("Security alert %s raised (%s)\n", alert.ID, formatSeverity(alert.Severity))
			return nil
		},
	}

	cmd.Flags().StringVar(&resourceID, "resource", "", "affected resource ID")
	cmd.Flags().StringVar(&actor, "actor", "", "who observed the event (defaults to system)")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func newSecurityTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List recognized security event types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			types, err := apiClient.SecurityEvents().EventTypes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list event types: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(types)
			}

			for _, t := range types {
				fmt.Println(t)
			}
			return nil
		},
	}
}
