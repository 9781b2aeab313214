package driven

import "context"

// RawRecord is one candidate record as produced by a source, before
// validation. Data is the decoded object graph; Path identifies the origin
// for error reporting (file path, row id, ...).
type RawRecord struct {
	// Path is the origin of the record, used in issue reports.
	Path string

	// Data is the untyped record body.
	Data map[string]any
}

// RecordSource supplies candidate records to the loader.
// Implementations own discovery and decoding (content directories, database
// rows, test fixtures); the loader only sees the in-memory object graph.
type RecordSource interface {
	// Records returns every candidate record the source can see.
	// Undecodable units are reported through the second return value
	// without aborting the batch.
	Records(ctx context.Context) ([]RawRecord, []error)
}

// WatchFunc is invoked after the watched source changed and settled.
type WatchFunc func()

// WatchableRecordSource is a RecordSource that can report content changes,
// enabling reload-and-swap serving.
type WatchableRecordSource interface {
	RecordSource

	// Watch blocks until ctx is cancelled, invoking fn after each burst
	// of changes beneath the source.
	Watch(ctx context.Context, fn WatchFunc) error
}
