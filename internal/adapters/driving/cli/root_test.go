package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/storage/memory"
	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
	"github.com/medbank-labs/medbank-cli/internal/core/services"
)

// stubLoader serves a canned library and report.
type stubLoader struct {
	library driving.Library
	report  *driving.LoadReport
	err     error
}

func (s *stubLoader) Load(_ context.Context) (driving.Library, *driving.LoadReport, error) {
	return s.library, s.report, s.err
}

func fixtureRecord(id, name string, alternates ...string) domain.EducationalContent {
	return domain.EducationalContent{
		ID:             id,
		Type:           domain.ContentTypeCondition,
		Name:           name,
		AlternateNames: alternates,
		Levels: map[int]domain.LevelContent{
			1: {
				Level:       1,
				Summary:     domain.BilingualText{ES: "Resumen sencillo", EN: "Simple summary"},
				Explanation: "A short explanation.",
			},
		},
		Version: 1,
		Status:  domain.StatusPublished,
	}
}

func fixtureLibrary(t *testing.T, records ...domain.EducationalContent) driving.Library {
	t.Helper()
	store, duplicates := memory.NewContentStore(records)
	if len(duplicates) > 0 {
		t.Fatalf("fixture has duplicate ids: %v", duplicates)
	}
	return services.NewLibraryService(store)
}

// setupTestServices wires stub services behind the commands and returns a
// cleanup restoring the previous wiring.
func setupTestServices(t *testing.T, records ...domain.EducationalContent) func() {
	t.Helper()

	library := fixtureLibrary(t, records...)
	report := &driving.LoadReport{Candidates: len(records), Loaded: library.Len()}

	oldConfig, oldSettings, oldLoader := configStore, settingsService, loaderService
	configStore = memory.NewConfigStore()
	settingsService = services.NewSettingsService(configStore)
	loaderService = &stubLoader{library: library, report: report}

	return func() {
		configStore, settingsService, loaderService = oldConfig, oldSettings, oldLoader
	}
}

// execute runs the root command with captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
