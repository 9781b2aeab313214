package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/storage/sqlite"
	"github.com/medbank-labs/medbank-cli/internal/core/services"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus to a SQLite snapshot",
	Long: `Validates the corpus and writes every record into a SQLite database
for downstream consumers.

Export refuses a dirty corpus: any validation error, duplicate id or
undecodable file aborts the export. Run 'medbank lint' first.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "db", "medbank.db", "output database path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}
	strict, ok := loaderService.(*services.LoaderService)
	if !ok {
		return errors.New("export requires the full loader")
	}

	ctx := context.Background()
	library, report, err := strict.LoadOrFail(ctx)
	if err != nil {
		if report != nil && !report.Clean() {
			renderLoadReport(cmd, report)
		}
		return fmt.Errorf("export aborted: %w", err)
	}

	snapshot, err := sqlite.NewSnapshot(exportOut)
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer func() {
		if err := snapshot.Close(); err != nil {
			logger.Warn("Closing snapshot: %v", err)
		}
	}()

	exportID, err := snapshot.Write(ctx, library)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d records to %s (export %s)\n", library.Len(), snapshot.Path(), exportID)
	return nil
}
