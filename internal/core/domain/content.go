package domain

import (
	"sort"
	"time"
)

// Level bounds for the escalating detail model. Level 1 is patient-facing
// prose, level 5 is expert/board-level detail.
const (
	MinLevel = 1
	MaxLevel = 5
)

// EducationalContent is one disease, drug-class or diagnostic-topic entry
// with all of its leveled explanations. It is the canonical representation
// after validation; records are immutable once loaded into a store.
type EducationalContent struct {
	// ID is the unique, stable identifier used as the primary key.
	ID string `json:"id"`

	// Type classifies the record (condition, topic, ...).
	Type ContentType `json:"type"`

	// Name is the primary English display name.
	Name string `json:"name"`

	// NameES is the Spanish display name, when it differs from Name.
	NameES string `json:"nameEs,omitempty"`

	// AlternateNames holds synonyms and abbreviations used for search.
	// Order carries no meaning.
	AlternateNames []string `json:"alternateNames,omitempty"`

	// Levels maps a detail level (1..5) to its content.
	Levels map[int]LevelContent `json:"levels"`

	// Media lists referenced images and diagrams, possibly empty.
	Media []MediaRef `json:"media,omitempty"`

	// Citations lists bibliographic references, ids unique within the record.
	Citations []Citation `json:"citations,omitempty"`

	// CrossReferences lists typed pointers to other records.
	CrossReferences []CrossReference `json:"crossReferences,omitempty"`

	// Tags carries the classification used by the tag index.
	Tags Tags `json:"tags"`

	// CreatedAt is when the record was first authored.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the record was last revised.
	UpdatedAt time.Time `json:"updatedAt"`

	// Version increases monotonically with each content revision.
	Version int `json:"version"`

	// Status is the publication state.
	Status ContentStatus `json:"status"`

	// Contributors lists author names, in authoring order.
	Contributors []string `json:"contributors,omitempty"`
}

// LevelNumbers returns the levels present on the record in ascending order.
func (c *EducationalContent) LevelNumbers() []int {
	nums := make([]int, 0, len(c.Levels))
	for k := range c.Levels {
		nums = append(nums, k)
	}
	sort.Ints(nums)
	return nums
}

// HasAllLevels returns true when every level 1..5 is present.
func (c *EducationalContent) HasAllLevels() bool {
	for k := MinLevel; k <= MaxLevel; k++ {
		if _, ok := c.Levels[k]; !ok {
			return false
		}
	}
	return true
}

// DisplayName returns the Spanish name when present, else the English name.
func (c *EducationalContent) DisplayName() string {
	if c.NameES != "" {
		return c.NameES
	}
	return c.Name
}

// LevelContent is the explanation of one record at one detail level.
type LevelContent struct {
	// Level matches the key this entry is stored under in Levels.
	Level int `json:"level"`

	// Summary is a short bilingual abstract.
	Summary BilingualText `json:"summary"`

	// Explanation is the long-form markdown body, Spanish section first,
	// then an English section after a horizontal rule.
	Explanation string `json:"explanation"`

	// KeyTerms lists vocabulary introduced at this level.
	KeyTerms []KeyTerm `json:"keyTerms,omitempty"`

	// Analogies lists everyday comparisons, mainly at lower levels.
	Analogies []BilingualText `json:"analogies,omitempty"`

	// Examples lists clinical vignettes.
	Examples []BilingualText `json:"examples,omitempty"`

	// PatientCounselingPoints lists advice for patient conversations.
	// Present mainly at level 1.
	PatientCounselingPoints []BilingualText `json:"patientCounselingPoints,omitempty"`

	// ClinicalNotes is a bilingual markdown block with practice pearls.
	// Present mainly at levels 3-5.
	ClinicalNotes string `json:"clinicalNotes,omitempty"`
}

// KeyTerm is one vocabulary entry within a level.
type KeyTerm struct {
	// Term is the word or phrase being defined.
	Term string `json:"term"`

	// Definition is the bilingual definition.
	Definition BilingualText `json:"definition"`

	// Pronunciation is an optional phonetic hint.
	Pronunciation string `json:"pronunciation,omitempty"`
}

// MediaRef points at an image or diagram asset.
type MediaRef struct {
	// ID identifies the asset within the record.
	ID string `json:"id"`

	// Type is the asset kind (image, diagram, ...).
	Type string `json:"type"`

	// Filename is the asset file name.
	Filename string `json:"filename"`

	// Title is the display caption.
	Title string `json:"title"`

	// Description explains what the asset shows.
	Description string `json:"description,omitempty"`
}

// Citation is one bibliographic reference.
type Citation struct {
	// ID is unique within the owning record.
	ID string `json:"id"`

	// Type classifies the reference.
	Type CitationType `json:"type"`

	// Title is the cited work's title.
	Title string `json:"title"`

	// Authors lists authors in citation order.
	Authors []string `json:"authors,omitempty"`

	// Source is the journal, publisher or site.
	Source string `json:"source"`

	// URL is an optional link to the work.
	URL string `json:"url,omitempty"`

	// Chapter is an optional chapter or section reference.
	Chapter string `json:"chapter,omitempty"`

	// License is an optional content license note.
	License string `json:"license,omitempty"`
}

// CrossReference is a typed, labeled pointer to another record.
// TargetID is a foreign key into the corpus; resolution happens at query
// time and dangling targets surface as integrity issues, not load errors.
type CrossReference struct {
	// TargetID is the id of the referenced record.
	TargetID string `json:"targetId"`

	// TargetType is the expected type of the referenced record.
	TargetType ContentType `json:"targetType"`

	// Relationship describes how the target relates to this record.
	Relationship Relationship `json:"relationship"`

	// Label is the human-readable link text.
	Label string `json:"label"`
}

// Tags is the fixed-shape classification block used for navigation.
type Tags struct {
	// Systems lists body systems the record belongs to.
	Systems []string `json:"systems,omitempty"`

	// Topics lists curriculum topics.
	Topics []string `json:"topics,omitempty"`

	// Keywords lists free-text search keywords.
	Keywords []string `json:"keywords,omitempty"`

	// ClinicalRelevance grades practice importance.
	ClinicalRelevance ClinicalRelevance `json:"clinicalRelevance"`

	// ExamRelevance is optional board-exam relevance.
	ExamRelevance *ExamRelevance `json:"examRelevance,omitempty"`
}

// ExamRelevance marks a record as relevant to licensing exams.
type ExamRelevance struct {
	// Exams lists the exams this record matters for.
	Exams []ExamType `json:"exams,omitempty"`

	// HighYield marks frequently tested material.
	HighYield bool `json:"highYield,omitempty"`
}
