package cli

import (
	"context"
	"fmt"

	"github.com/pratik-mahalle/cloudsentry/pkg/client"
	"github.com/spf13/cobra"
)

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	cmd.AddCommand(newProductListCmd())
	cmd.AddCommand(newProductCreateCmd())
	cmd.AddCommand(newProductDeleteCmd())

	return cmd
}

func newProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			products, err := apiClient.Products().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(products)
			}

			t := NewTable("ID", "NAME", "DESCRIPTION")
			for _, p := range products {
				t.AddRow(p.ID, p.Name, truncate(p.Description, 60))
			}
			t.Render()
			return nil
		},
	}
}

func newProductCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := apiClient.Products().Create(ctx, client.CreateProductRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}

			fmt.Printf("Product %s created\n", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "product description")

	return cmd
}

func newProductDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := apiClient.Products().Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}

			fmt.Printf("Product %s deleted\n", args[0])
			return nil
		},
	}
}
