package services

import (
	"sync/atomic"

	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
)

// libraryState bundles a library with the report of the load that built it.
type libraryState struct {
	library driving.Library
	report  *driving.LoadReport
}

// LibraryHolder serves the current library to concurrent readers while a
// watcher rebuilds it in the background. Readers see either the fully-old
// or fully-new corpus, never a partial one: a reload builds a brand-new
// store and swaps a single pointer.
type LibraryHolder struct {
	state atomic.Pointer[libraryState]
}

// NewLibraryHolder creates a holder serving the given library.
func NewLibraryHolder(library driving.Library, report *driving.LoadReport) *LibraryHolder {
	h := &LibraryHolder{}
	h.Swap(library, report)
	return h
}

// Swap atomically replaces the served library.
func (h *LibraryHolder) Swap(library driving.Library, report *driving.LoadReport) {
	h.state.Store(&libraryState{library: library, report: report})
}

// Library returns the currently served library.
func (h *LibraryHolder) Library() driving.Library {
	return h.state.Load().library
}

// Report returns the load report of the currently served library.
func (h *LibraryHolder) Report() *driving.LoadReport {
	return h.state.Load().report
}
