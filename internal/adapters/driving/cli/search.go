package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search records by name",
	Long: `Matches text case-insensitively against record names, Spanish names
and alternate names. Exact matches rank before substring matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	library, err := loadLibrary()
	if err != nil {
		return err
	}

	matches := library.SearchByAlternateName(args[0])

	if searchJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, record := range matches {
		cmd.Printf("  [%d] %s (%s)\n", i+1, record.DisplayName(), record.ID)
		if len(record.AlternateNames) > 0 {
			cmd.Printf("      %s\n", reportMutedStyle.Render(fmt.Sprintf("Also: %v", record.AlternateNames)))
		}
	}
	return nil
}
