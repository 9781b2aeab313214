package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/storage/memory"
	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
)

// stubSource is a canned record source for loader tests.
type stubSource struct {
	records []driven.RawRecord
	errs    []error
}

func (s *stubSource) Records(_ context.Context) ([]driven.RawRecord, []error) {
	return s.records, s.errs
}

func newLoader(source driven.RecordSource) *LoaderService {
	validator := NewValidator(domain.DefaultValidationPolicy())
	return NewLoaderService(source, validator, memory.NewContentStore)
}

func TestLoaderService_Load(t *testing.T) {
	source := &stubSource{records: []driven.RawRecord{
		{Path: "conditions/tb.json", Data: rawRecord("condition-tb")},
		{Path: "conditions/hiv.json", Data: rawRecord("condition-hiv")},
	}}

	library, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, library)
	assert.Equal(t, 2, report.Candidates)
	assert.Equal(t, 2, report.Loaded)
	assert.True(t, report.Clean())

	record, err := library.Get("condition-tb")
	require.NoError(t, err)
	assert.Equal(t, "Dialysis", record.Name)
}

func TestLoaderService_Load_BadRecordSkipsNotAborts(t *testing.T) {
	bad := rawRecord("condition-bad")
	delete(bad, "name")

	source := &stubSource{records: []driven.RawRecord{
		{Path: "good.json", Data: rawRecord("condition-good")},
		{Path: "bad.json", Data: bad},
		{Path: "also-good.json", Data: rawRecord("condition-also-good")},
	}}

	library, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Candidates)
	assert.Equal(t, 2, report.Loaded)
	assert.False(t, report.Clean())
	assert.Positive(t, report.ErrorCount())

	_, err = library.Get("condition-bad")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = library.Get("condition-also-good")
	assert.NoError(t, err)
}

func TestLoaderService_Load_IssuesCarryRecordID(t *testing.T) {
	// A record missing its id gets issues attributed to its source path.
	anonymous := rawRecord("ignored")
	delete(anonymous, "id")
	delete(anonymous, "name")

	source := &stubSource{records: []driven.RawRecord{
		{Path: "conditions/anonymous.json", Data: anonymous},
	}}

	_, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, report.Issues)
	for _, issue := range report.Issues {
		assert.Equal(t, "conditions/anonymous.json", issue.RecordID)
	}
}

func TestLoaderService_Load_DuplicateIDs(t *testing.T) {
	first := rawRecord("condition-dup")
	second := rawRecord("condition-dup")
	second["name"] = "Peritoneal dialysis"

	source := &stubSource{records: []driven.RawRecord{
		{Path: "a.json", Data: first},
		{Path: "b.json", Data: second},
		{Path: "c.json", Data: rawRecord("condition-unique")},
	}}

	library, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, "condition-dup", report.Duplicates[0].ID)
	assert.False(t, report.Clean())

	// Colliding records are excluded; the rest of the batch loads.
	assert.Equal(t, 1, report.Loaded)
	_, err = library.Get("condition-dup")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = library.Get("condition-unique")
	assert.NoError(t, err)
}

func TestLoaderService_Load_SourceErrors(t *testing.T) {
	source := &stubSource{
		records: []driven.RawRecord{{Path: "ok.json", Data: rawRecord("condition-ok")}},
		errs:    []error{errors.New("broken.json: unexpected end of JSON input")},
	}

	_, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, report.SourceErrors, 1)
	assert.False(t, report.Clean())
	assert.Equal(t, 1, report.Loaded)
}

func TestLoaderService_Load_EmptySource(t *testing.T) {
	library, report, err := newLoader(&stubSource{}).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoRecords)
	assert.Nil(t, library)
	require.NotNil(t, report)
	assert.Zero(t, report.Candidates)
}

func TestLoaderService_Load_IntegrityInReport(t *testing.T) {
	dangling := rawRecord("condition-dangling")
	dangling["crossReferences"] = []any{
		map[string]any{
			"targetId":     "condition-missing",
			"targetType":   "condition",
			"relationship": "related",
			"label":        "Gone",
		},
	}

	source := &stubSource{records: []driven.RawRecord{
		{Path: "dangling.json", Data: dangling},
	}}

	_, report, err := newLoader(source).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Integrity, 1)
	assert.Equal(t, "condition-missing", report.Integrity[0].TargetID)
	// Integrity issues alone do not dirty the report; severity is policy.
	assert.True(t, report.Clean())
}

func TestLoaderService_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newLoader(&stubSource{}).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoaderService_LoadOrFail(t *testing.T) {
	t.Run("clean corpus passes", func(t *testing.T) {
		source := &stubSource{records: []driven.RawRecord{
			{Path: "ok.json", Data: rawRecord("condition-ok")},
		}}

		library, _, err := newLoader(source).LoadOrFail(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, library)
	})

	t.Run("dirty corpus fails", func(t *testing.T) {
		bad := rawRecord("condition-bad")
		delete(bad, "name")
		source := &stubSource{records: []driven.RawRecord{{Path: "bad.json", Data: bad}}}

		library, report, err := newLoader(source).LoadOrFail(context.Background())

		require.Error(t, err)
		assert.Nil(t, library)
		require.NotNil(t, report)
		assert.Positive(t, report.ErrorCount())
	})
}
