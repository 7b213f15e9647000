package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finecto/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "finecto",
	Short: "Finecto - company-rule invoice and vendor transforms",
	Long: `Finecto applies per-company business rules to invoice and vendor
records: invoices are classified into account codes, vendors are checked for
required documentation, and every processed record is appended to a local
JSON Lines journal.

Run "finecto serve" to expose the transforms over HTTP, or "finecto export"
to dump the journal to a spreadsheet.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Finecto!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
