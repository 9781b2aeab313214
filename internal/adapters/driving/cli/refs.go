package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

var refsCmd = &cobra.Command{
	Use:   "refs [id]",
	Short: "Show a record's cross-references",
	Long: `Resolves every cross-reference on a record against the loaded corpus.
References to ids not present in the corpus are marked as missing.

Without an id, checks the whole corpus and lists every dangling
cross-reference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefs,
}

func init() {
	rootCmd.AddCommand(refsCmd)
}

func runRefs(cmd *cobra.Command, args []string) error {
	library, err := loadLibrary()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		issues := library.CheckIntegrity()
		if len(issues) == 0 {
			cmd.Println(reportSuccessStyle.Render("All cross-references resolve."))
			return nil
		}
		cmd.Println(reportTitleStyle.Render("Dangling cross-references"))
		for _, issue := range issues {
			cmd.Printf("  %s %s\n", reportWarningStyle.Render("!"), issue.String())
		}
		return nil
	}

	record, err := library.Get(args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no record with id %q", args[0])
		}
		return fmt.Errorf("refs failed: %w", err)
	}

	refs := library.ResolveCrossReferences(record)
	if len(refs) == 0 {
		cmd.Printf("%s has no cross-references.\n", record.ID)
		return nil
	}

	cmd.Println(reportTitleStyle.Render(record.DisplayName()))
	for _, ref := range refs {
		printResolvedReference(cmd, ref)
	}
	return nil
}
