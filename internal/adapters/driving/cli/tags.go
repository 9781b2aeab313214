package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [dimension] [value]",
	Short: "Find records by tag",
	Long: `Finds records carrying a tag value in one dimension.

Dimensions:
  system   - body system (renal, cardiovascular, ...)
  topic    - subject area (nephrology, infectious-disease, ...)
  keyword  - free-form keywords`,
	Args: cobra.ExactArgs(2),
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	library, err := loadLibrary()
	if err != nil {
		return err
	}

	dimension := domain.TagDimension(args[0])
	matches, err := library.FindByTag(dimension, args[1])
	if err != nil {
		return fmt.Errorf("tag lookup failed: %w", err)
	}

	if len(matches) == 0 {
		cmd.Printf("No records tagged %s=%q.\n", dimension, args[1])
		return nil
	}

	cmd.Printf("%s - %s=%q\n", reportTitleStyle.Render("Tagged records"), dimension, args[1])
	for _, record := range matches {
		cmd.Printf("  %-28s %s\n", record.ID, record.DisplayName())
	}
	return nil
}
