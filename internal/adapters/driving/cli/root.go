package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/medbank-labs/medbank-cli/internal/adapters/driven/config/file"
	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/source/jsonfile"
	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/storage/memory"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
	"github.com/medbank-labs/medbank-cli/internal/core/services"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services consumed by the commands. Wired in initServices; tests swap
// them for stubs.
var (
	configStore     driven.ConfigStore
	settingsService *services.SettingsService
	loaderService   driving.Loader
	watchSource     driven.WatchableRecordSource
)

var (
	verboseFlag    bool
	contentDirFlag string
	configDirFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "medbank",
	Short: "Bilingual medical education content toolkit",
	Long: `medbank validates, indexes and queries a corpus of bilingual
(Spanish/English) medical education records authored as JSON files.

Each record teaches one subject at five explanation levels, from
child-friendly to physician-level detail.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&contentDirFlag, "content-dir", "", "content directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.medbank)")
}

// Execute runs the CLI with the build version injected by main.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}

// initServices wires the adapters behind the commands. Vars already set
// (by a previous run or a test) are left alone.
func initServices() error {
	if configStore == nil {
		store, err := configfile.NewConfigStore(configDirFlag)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}
	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	if loaderService == nil {
		dir := contentDir()
		source := jsonfile.New(dir)
		watchSource = source
		validator := services.NewValidator(settingsService.ValidationPolicy())
		loaderService = services.NewLoaderService(source, validator, memory.NewContentStore)
		logger.Debug("Content directory: %s", dir)
	}
	return nil
}

// contentDir resolves the corpus root: flag, then config, then ./content.
func contentDir() string {
	if contentDirFlag != "" {
		return contentDirFlag
	}
	if settingsService != nil {
		if dir := settingsService.ContentDir(); dir != "" {
			return dir
		}
	}
	return "content"
}
