package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/services"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the corpus on content changes",
	Long: `Loads the corpus and keeps it loaded, rebuilding after every burst of
file changes in the content directory. Each reload is atomic: readers of
the held library see either the old or the new corpus, never a mix.

Intended for authoring sessions; stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}
	if watchSource == nil {
		return errors.New("content source does not support watching")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	library, report, err := loaderService.Load(ctx)
	if err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}
	holder := services.NewLibraryHolder(library, report)
	printWatchSummary(cmd, holder)

	cmd.Printf("Watching %s for changes...\n", contentDir())

	err = watchSource.Watch(ctx, func() {
		library, report, err := loaderService.Load(ctx)
		if err != nil {
			logger.Error("Reload failed: %v", err)
			return
		}
		holder.Swap(library, report)
		printWatchSummary(cmd, holder)
	})
	if errors.Is(err, context.Canceled) {
		cmd.Println("\nStopped.")
		return nil
	}
	return err
}

func printWatchSummary(cmd *cobra.Command, holder *services.LibraryHolder) {
	report := holder.Report()
	status := reportSuccessStyle.Render("ok")
	if !report.Clean() {
		status = reportErrorStyle.Render(fmt.Sprintf("%d errors", report.ErrorCount()))
	}
	cmd.Printf("Corpus: %d/%d records [%s]\n", report.Loaded, report.Candidates, status)
}
