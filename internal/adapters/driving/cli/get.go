package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
)

var (
	getJSON  bool
	getLevel int
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one content record",
	Long: `Retrieves a record by id and prints its bilingual content.
Use --level to print a single explanation level in full.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output the record as JSON")
	getCmd.Flags().IntVar(&getLevel, "level", 0, "print only this explanation level (1-5)")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	library, err := loadLibrary()
	if err != nil {
		return err
	}

	record, err := library.Get(args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no record with id %q", args[0])
		}
		return fmt.Errorf("get failed: %w", err)
	}

	if getJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if getLevel != 0 {
		level, ok := record.Levels[getLevel]
		if !ok {
			return fmt.Errorf("record %q has no level %d", record.ID, getLevel)
		}
		printLevel(cmd, record, level)
		return nil
	}

	printRecord(cmd, record, library.ResolveCrossReferences(record))
	return nil
}

func printRecord(cmd *cobra.Command, record *domain.EducationalContent, refs []driving.ResolvedReference) {
	cmd.Println(reportTitleStyle.Render(record.DisplayName()))
	cmd.Printf("  %s (%s, %s, v%d)\n", record.ID, record.Type, record.Status, record.Version)
	if len(record.AlternateNames) > 0 {
		cmd.Printf("  Also known as: %v\n", record.AlternateNames)
	}
	cmd.Println()

	for _, n := range record.LevelNumbers() {
		level := record.Levels[n]
		cmd.Printf("  Level %d: %s\n", n, level.Summary.EN)
		cmd.Printf("           %s\n", reportMutedStyle.Render(level.Summary.ES))
	}
	if len(record.Levels) > 0 {
		cmd.Println()
	}

	if len(refs) > 0 {
		cmd.Println(reportSectionStyle.Render("Cross-references"))
		for _, ref := range refs {
			printResolvedReference(cmd, ref)
		}
	}
}

func printLevel(cmd *cobra.Command, record *domain.EducationalContent, level domain.LevelContent) {
	cmd.Println(reportTitleStyle.Render(fmt.Sprintf("%s - Level %d", record.DisplayName(), level.Level)))
	cmd.Println()
	cmd.Printf("  EN: %s\n", level.Summary.EN)
	cmd.Printf("  ES: %s\n", level.Summary.ES)
	cmd.Println()
	cmd.Println(level.Explanation)

	if len(level.KeyTerms) > 0 {
		cmd.Println()
		cmd.Println(reportSectionStyle.Render("Key terms"))
		for _, term := range level.KeyTerms {
			cmd.Printf("  %s - %s / %s\n", term.Term, term.Definition.ES, term.Definition.EN)
		}
	}
}

func printResolvedReference(cmd *cobra.Command, ref driving.ResolvedReference) {
	if ref.Resolved() {
		cmd.Printf("  %s %s: %s (%s)\n",
			reportSuccessStyle.Render("→"), ref.Reference.Relationship, ref.Target.DisplayName(), ref.Reference.TargetID)
		return
	}
	cmd.Printf("  %s %s: %s %s\n",
		reportErrorStyle.Render("→"), ref.Reference.Relationship, ref.Reference.TargetID,
		reportErrorStyle.Render("(missing)"))
}

// loadLibrary runs the loader for the read-only query commands. Load
// problems are surfaced as warnings; the admitted corpus still serves.
func loadLibrary() (driving.Library, error) {
	if loaderService == nil {
		return nil, errors.New("loader service not configured")
	}
	library, report, err := loaderService.Load(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNoRecords) {
			return nil, fmt.Errorf("no content found in %s", contentDir())
		}
		return nil, err
	}
	if !report.Clean() {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: %d records rejected; run 'medbank lint' for details\n",
			report.Candidates-report.Loaded)
	}
	return library, nil
}
