package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show platform summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			format := getOutputFormat()
			if format != "table" {
				summary := map[string]interface{}{}

				resources, err := apiClient.Resources().List(ctx, nil)
				if err == nil {
					summary["resources"] = len(resources)
				}
				alerts, err := apiClient.Alerts().List(ctx, nil)
				if err == nil {
					summary["alerts"] = len(alerts)
				}
				incidents, err := apiClient.Incidents().List(ctx, nil)
				if err == nil {
					summary["incidents"] = len(incidents)
				}
				return printOutput(summary)
			}

			fmt.Println("CloudSentry Dashboard")
			fmt.Println(strings.Repeat("=", 40))

			// Resources
			resources, err := apiClient.Resources().List(ctx, nil)
			if err != nil {
				fmt.Printf("  Resources:   (error: %v)\n", err)
			} else {
				monitored := 0
				for _, r := range resources {
					if r.MonitoringEnabled {
						monitored++
					}
				}
				fmt.Printf("  Resources:   %d monitored (%d total)\n", monitored, len(resources))
			}

			// Alerts
			alerts, err := apiClient.Alerts().List(ctx, nil)
			if err != nil {
				fmt.Printf("  Alerts:      (error: %v)\n", err)
			} else {
				active := 0
				critical := 0
				for _, a := range alerts {
					if a.Status == "active" {
						active++
					}
					if a.Severity == "critical" {
						critical++
					}
				}
				fmt.Printf("  Alerts:      %d active", active)
				if critical > 0 {
					fmt.Printf(" (%d critical)", critical)
				}
				fmt.Println()
			}

			// Incidents
			incidents, err := apiClient.Incidents().List(ctx, nil)
			if err != nil {
				fmt.Printf("  Incidents:   (error: %v)\n", err)
			} else {
				open := 0
				for _, in := range incidents {
					if in.Status == "open" || in.Status == "in_progress" {
						open++
					}
				}
				fmt.Printf("  Incidents:   %d open (%d total)\n", open, len(incidents))
			}

			return nil
		},
	}
}
