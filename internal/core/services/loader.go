package services

import (
	"context"
	"fmt"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

// Ensure LoaderService implements the interface.
var _ driving.Loader = (*LoaderService)(nil)

// LoaderService runs the ingestion pipeline: record source -> validator ->
// content store -> library. One bad record never blocks the rest of the
// batch; every problem lands in the LoadReport.
type LoaderService struct {
	source    driven.RecordSource
	validator *Validator
	factory   driven.ContentStoreFactory
}

// NewLoaderService creates a loader over a source, validator and store
// factory.
func NewLoaderService(source driven.RecordSource, validator *Validator, factory driven.ContentStoreFactory) *LoaderService {
	return &LoaderService{
		source:    source,
		validator: validator,
		factory:   factory,
	}
}

// Load discovers, validates and stores the corpus.
func (l *LoaderService) Load(ctx context.Context) (driving.Library, *driving.LoadReport, error) {
	logger.Section("Corpus Load")

	raws, sourceErrs := l.source.Records(ctx)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	report := &driving.LoadReport{Candidates: len(raws)}
	for _, err := range sourceErrs {
		report.SourceErrors = append(report.SourceErrors, err.Error())
		logger.Warn("Source: %v", err)
	}
	logger.Debug("Source produced %d candidate records, %d decode failures", len(raws), len(sourceErrs))

	if len(raws) == 0 && len(sourceErrs) == 0 {
		return nil, report, domain.ErrNoRecords
	}

	valid := make([]domain.EducationalContent, 0, len(raws))
	for _, raw := range raws {
		record, issues := l.validator.Validate(raw.Data)
		for i := range issues {
			if issues[i].RecordID == "" && raw.Path != "" {
				issues[i].RecordID = raw.Path
			}
		}
		report.Issues = append(report.Issues, issues...)

		if record == nil {
			logger.Warn("Rejected %s: %d validation errors", raw.Path, domain.CountErrors(issues))
			continue
		}
		valid = append(valid, *record)
	}

	store, duplicates := l.factory(valid)
	report.Duplicates = duplicates
	for _, dup := range duplicates {
		logger.Warn("Excluded colliding records: %v", dup)
	}

	library := NewLibraryService(store)
	report.Integrity = library.CheckIntegrity()
	report.Loaded = store.Len()

	logger.Info("Corpus loaded: %d/%d records admitted, %d errors, %d warnings, %d integrity issues",
		report.Loaded, report.Candidates, report.ErrorCount(), report.WarningCount(), len(report.Integrity))

	return library, report, nil
}

// LoadOrFail wraps Load for callers that treat a dirty report as fatal,
// such as snapshot export.
func (l *LoaderService) LoadOrFail(ctx context.Context) (driving.Library, *driving.LoadReport, error) {
	library, report, err := l.Load(ctx)
	if err != nil {
		return nil, report, err
	}
	if !report.Clean() {
		return nil, report, fmt.Errorf("corpus has %d load errors", report.ErrorCount())
	}
	return library, report, nil
}
