package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

var (
	lintJSON            bool
	lintStrictIntegrity bool
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the content corpus",
	Long: `Loads every record in the content directory and reports all schema
violations, duplicate ids and dangling cross-references in one pass.

Exits non-zero when the corpus has errors, so it can gate CI. Dangling
cross-references are warnings unless --strict-integrity is set or the
integrity policy is configured to fail.`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "output the report as JSON")
	lintCmd.Flags().BoolVar(&lintStrictIntegrity, "strict-integrity", false, "treat dangling cross-references as errors")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}

	_, report, err := loaderService.Load(context.Background())
	if err != nil && !errors.Is(err, domain.ErrNoRecords) {
		return fmt.Errorf("lint failed: %w", err)
	}
	if errors.Is(err, domain.ErrNoRecords) {
		return fmt.Errorf("no content found in %s", contentDir())
	}

	integrityFails := lintStrictIntegrity
	if settingsService != nil && settingsService.IntegrityPolicy() == domain.IntegrityFail {
		integrityFails = true
	}

	if lintJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		renderLoadReport(cmd, report)
	}

	if n := report.ErrorCount(); n > 0 {
		return fmt.Errorf("corpus has %d errors", n)
	}
	if integrityFails && len(report.Integrity) > 0 {
		return fmt.Errorf("corpus has %d dangling cross-references", len(report.Integrity))
	}
	return nil
}
