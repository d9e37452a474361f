package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the books and pages stored on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if token == "" {
			return fmt.Errorf("a token is required, obtain one with bookctl login")
		}
		if err := createClient(); err != nil {
			return err
		}

		ctx := context.Background()
		books, err := apiClient.ListBooks(ctx)
		if err != nil {
			return err
		}

		totalPages := 0
		for _, b := range books {
			pages, err := apiClient.ListPages(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("book %d: %w", b.ID, err)
			}
			totalPages += len(pages)
		}

		fmt.Printf("Books : %d\n", len(books))
		fmt.Printf("Pages : %d\n", totalPages)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
