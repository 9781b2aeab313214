package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List content records",
	Long:  `Lists every record in the corpus, optionally filtered by content type.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by content type (structure, system, pathway, process, condition, concept, topic)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	library, err := loadLibrary()
	if err != nil {
		return err
	}

	var records []*domain.EducationalContent
	if listType != "" {
		t := domain.ContentType(listType)
		if !t.IsValid() {
			return fmt.Errorf("unknown content type %q", listType)
		}
		records = library.ByType(t)
	} else {
		for record := range library.All() {
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	for _, record := range records {
		levels := fmt.Sprintf("%d/%d levels", len(record.Levels), domain.MaxLevel)
		if record.HasAllLevels() {
			levels = "complete"
		}
		cmd.Printf("  %-28s %-10s %-10s %s\n", record.ID, record.Type, record.Status, reportMutedStyle.Render(levels))
	}
	cmd.Printf("\n%d records\n", len(records))
	return nil
}
