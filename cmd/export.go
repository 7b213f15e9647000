package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finecto/internal/config"
	"finecto/internal/export"
	"finecto/internal/journal"
	"finecto/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transaction journal to an XLSX workbook",
	Long: `Read the JSON Lines journal written by the transform endpoints and dump
every record into a spreadsheet, one row per record. Columns are derived
from the record fields with the type discriminator first.`,
	Example: `  # Export the configured journal to journal.xlsx
  finecto export

  # Choose the output file and a different journal
  finecto export -o /tmp/journal.xlsx --journal db/result.jsonl`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "journal.xlsx", "Output workbook path")
	exportCmd.Flags().String("journal", "", "Journal path (default: JOURNAL_PATH)")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	journalPath, _ := cmd.Flags().GetString("journal")
	if journalPath == "" {
		journalPath = cfg.JournalPath
	}
	outputPath, _ := cmd.Flags().GetString("output")

	records, err := journal.NewReader(journalPath).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("journal %s holds no records", journalPath)
	}

	if err := export.WriteWorkbook(records, outputPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Info().
		Int("records", len(records)).
		Str("journal", journalPath).
		Str("output", outputPath).
		Msg("Journal exported")

	return nil
}
