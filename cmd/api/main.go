package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Patient appointment scheduler",
	Long: `clinic serves the appointment API and prints appointment views.

Available subcommands:
  serve - Run the HTTP API and the reminder job
  views - Print a patient's upcoming and past appointments`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(viewsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
