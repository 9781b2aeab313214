package domain

const unknownDescription = "Unknown"

// ContentType classifies what kind of entity a record describes.
type ContentType string

// Recognised content types.
const (
	ContentTypeStructure ContentType = "structure"
	ContentTypeSystem    ContentType = "system"
	ContentTypePathway   ContentType = "pathway"
	ContentTypeProcess   ContentType = "process"
	ContentTypeCondition ContentType = "condition"
	ContentTypeConcept   ContentType = "concept"
	ContentTypeTopic     ContentType = "topic"
)

// ContentTypes lists every recognised content type.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeStructure,
		ContentTypeSystem,
		ContentTypePathway,
		ContentTypeProcess,
		ContentTypeCondition,
		ContentTypeConcept,
		ContentTypeTopic,
	}
}

// IsValid returns true if the content type is recognised.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeStructure, ContentTypeSystem, ContentTypePathway,
		ContentTypeProcess, ContentTypeCondition, ContentTypeConcept, ContentTypeTopic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ContentType) String() string {
	return string(t)
}

// ContentStatus is the publication state of a record.
type ContentStatus string

// Recognised publication states.
const (
	StatusDraft     ContentStatus = "draft"
	StatusReview    ContentStatus = "review"
	StatusPublished ContentStatus = "published"
)

// IsValid returns true if the status is recognised.
func (s ContentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ContentStatus) String() string {
	return string(s)
}

// Relationship describes how a cross-reference target relates to its owner.
type Relationship string

// Recognised relationship kinds.
const (
	RelationshipParent  Relationship = "parent"
	RelationshipChild   Relationship = "child"
	RelationshipSibling Relationship = "sibling"
	RelationshipRelated Relationship = "related"
	RelationshipSeeAlso Relationship = "see-also"
)

// IsValid returns true if the relationship kind is recognised.
func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipParent, RelationshipChild, RelationshipSibling,
		RelationshipRelated, RelationshipSeeAlso:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Relationship) String() string {
	return string(r)
}

// Description returns a human-readable description of the relationship.
func (r Relationship) Description() string {
	switch r {
	case RelationshipParent:
		return "Broader entry this record belongs to"
	case RelationshipChild:
		return "Narrower entry under this record"
	case RelationshipSibling:
		return "Entry at the same level"
	case RelationshipRelated:
		return "Clinically related entry"
	case RelationshipSeeAlso:
		return "Suggested further reading"
	default:
		return unknownDescription
	}
}

// ClinicalRelevance grades how important a record is in clinical practice.
type ClinicalRelevance string

// Recognised clinical relevance grades.
const (
	RelevanceLow      ClinicalRelevance = "low"
	RelevanceMedium   ClinicalRelevance = "medium"
	RelevanceHigh     ClinicalRelevance = "high"
	RelevanceCritical ClinicalRelevance = "critical"
)

// IsValid returns true if the relevance grade is recognised.
func (c ClinicalRelevance) IsValid() bool {
	switch c {
	case RelevanceLow, RelevanceMedium, RelevanceHigh, RelevanceCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ClinicalRelevance) String() string {
	return string(c)
}

// CitationType classifies a bibliographic reference.
type CitationType string

// Recognised citation types.
const (
	CitationArticle   CitationType = "article"
	CitationTextbook  CitationType = "textbook"
	CitationGuideline CitationType = "guideline"
	CitationWebsite   CitationType = "website"
	CitationDatabase  CitationType = "database"
)

// IsValid returns true if the citation type is recognised.
func (c CitationType) IsValid() bool {
	switch c {
	case CitationArticle, CitationTextbook, CitationGuideline,
		CitationWebsite, CitationDatabase:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c CitationType) String() string {
	return string(c)
}

// ExamType identifies a licensing exam a record is relevant to.
type ExamType string

// Recognised exam types.
const (
	ExamUSMLE ExamType = "usmle"
	ExamNBME  ExamType = "nbme"
	ExamShelf ExamType = "shelf"
)

// IsValid returns true if the exam type is recognised.
func (e ExamType) IsValid() bool {
	switch e {
	case ExamUSMLE, ExamNBME, ExamShelf:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e ExamType) String() string {
	return string(e)
}

// TagDimension selects which tag set a tag query runs against.
type TagDimension string

// Recognised tag dimensions.
const (
	TagSystem  TagDimension = "system"
	TagTopic   TagDimension = "topic"
	TagKeyword TagDimension = "keyword"
)

// IsValid returns true if the tag dimension is recognised.
func (d TagDimension) IsValid() bool {
	switch d {
	case TagSystem, TagTopic, TagKeyword:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d TagDimension) String() string {
	return string(d)
}

// Description returns a human-readable description of the dimension.
func (d TagDimension) Description() string {
	switch d {
	case TagSystem:
		return "Body system (e.g. renal, cardiovascular)"
	case TagTopic:
		return "Curriculum topic"
	case TagKeyword:
		return "Free-text keyword"
	default:
		return unknownDescription
	}
}
