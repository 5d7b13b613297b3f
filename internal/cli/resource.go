package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage monitored resources",
	}

	cmd.AddCommand(newResourceListCmd())
	cmd.AddCommand(newResourceGetCmd())
	cmd.AddCommand(newResourceCreateCmd())
	cmd.AddCommand(newResourceCollectCmd())

	return cmd
}

func newResourceListCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resources, err := apiClient.Resources().List(ctx, &client.ListOptions{Skip: skip, Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list resources: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(resources)
			}

			t := NewTable("ID", "NAME", "PROVIDER", "TYPE", "MONITORING")
			for _, r := range resources {
				monitoring := "disabled"
				if r.MonitoringEnabled {
					monitoring = "enabled"
				}
				t.AddRow(r.ID, truncate(r.Name, 40), r.CloudProvider, r.ResourceType, monitoring)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of resources to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of resources to return")

	return cmd
}

func newResourceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get resource details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r, err := apiClient.Resources().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get resource: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(r)
			}

			fmt.Printf("ID:         %s\n", r.ID)
			fmt.Printf("Name:       %s\n", r.Name)
			fmt.Printf("Product:    %s\n", r.ProductID)
			fmt.Printf("Cloud ID:   %s\n", r.CloudID)
			fmt.Printf("Provider:   %s\n", r.CloudProvider)
			fmt.Printf("Type:       %s\n", r.ResourceType)
			fmt.Printf("Monitoring: %t\n", r.MonitoringEnabled)
			return nil
		},
	}
}

func newResourceCreateCmd() *cobra.Command {
	var productID, cloudID, provider, resourceType string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r, err := apiClient.Resources().Create(ctx, client.CreateResourceRequest{
				ProductID:     productID,
				Name:          args[0],
				CloudID:       cloudID,
				CloudProvider: provider,
				ResourceType:  resourceType,
			})
			if err != nil {
				return fmt.Errorf("failed to create resource: %w", err)
			}

			fmt.Printf("Resource %s registered\n", r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "owning product ID")
	cmd.Flags().StringVar(&cloudID, "cloud-id", "", "provider-side resource identifier")
	cmd.Flags().StringVar(&provider, "provider", "aws", "cloud provider: aws, gcp, azure")
	cmd.Flags().StringVar(&resourceType, "type", "", "resource type (e.g. ec2_instance)")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("cloud-id")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newResourceCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect <id>",
		Short: "Run a metric collection pass over a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rm, err := apiClient.Resources().Collect(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to collect metrics: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(rm)
			}

			t := NewTable("METRIC", "VALUE", "BREACH")
			breached := map[string]float64{}
			for _, b := range rm.Breaches {
				breached[b.Metric] = b.Threshold
			}
			for name, v := range rm.Values {
				value := "-"
				if v != nil {
					value = fmt.Sprintf("%.2f", *v)
				}
				breach := ""
				if threshold, ok := breached[name]; ok {
					breach = fmt.Sprintf("> %.2f", threshold)
				}
				t.AddRow(name, value, breach)
			}
			t.Render()
			return nil
		},
	}
}
