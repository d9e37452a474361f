package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"bookstore-backend/internal/client"
)

var server string
var token string
var noProgress bool

var apiClient *client.Client

func createClient() error {
	baseURL, err := url.ParseRequestURI(server)
	if err != nil {
		return fmt.Errorf("could not parse server's base URL: %v", err)
	}
	apiClient = client.New(*baseURL, token)
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Control your bookstore API server from the command line",
	Long: `bookctl is a command line tool for the bookstore API.

You can log in to obtain a token, bulk-import books with their pages from
YAML or NDJSON files, and count the resources stored on the server.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&server, "server", "http://localhost:8080", "the base URL of the API server")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token obtained from bookctl login")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "don't show progress bars")
}
