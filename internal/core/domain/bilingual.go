package domain

import "strings"

// bilingualSeparator is the legacy delimiter used by authored content to
// carry Spanish and English prose in a single string.
const bilingualSeparator = " | "

// BilingualText holds one prose value in both languages.
// It replaces the legacy "Spanish text | English text" single-string
// convention, which had no escaping rule for literal pipes.
type BilingualText struct {
	// ES is the Spanish text.
	ES string `json:"es"`

	// EN is the English text.
	EN string `json:"en"`
}

// ParseBilingual splits a legacy delimited string on the first " | "
// occurrence. When no separator is present the raw text is kept in ES and
// EN is left empty; ok is false so callers can flag the record instead of
// guessing a language.
func ParseBilingual(s string) (BilingualText, bool) {
	es, en, found := strings.Cut(s, bilingualSeparator)
	if !found {
		return BilingualText{ES: strings.TrimSpace(s)}, false
	}
	return BilingualText{ES: strings.TrimSpace(es), EN: strings.TrimSpace(en)}, true
}

// IsComplete returns true when both languages carry non-empty text.
func (b BilingualText) IsComplete() bool {
	return strings.TrimSpace(b.ES) != "" && strings.TrimSpace(b.EN) != ""
}

// IsZero returns true when neither language carries text.
func (b BilingualText) IsZero() bool {
	return b.ES == "" && b.EN == ""
}

// Legacy renders the value back into the delimited authoring convention.
// Used by the snapshot exporter for consumers that still read the old format.
func (b BilingualText) Legacy() string {
	if b.EN == "" {
		return b.ES
	}
	return b.ES + bilingualSeparator + b.EN
}
