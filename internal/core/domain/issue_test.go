package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{
		RecordID: "condition-tb",
		Path:     "levels.3",
		Severity: SeverityError,
		Message:  "missing required level",
	}

	assert.Equal(t, "error: condition-tb: levels.3: missing required level", issue.String())
}

func TestValidationIssue_String_UnknownRecord(t *testing.T) {
	issue := ValidationIssue{Path: "id", Severity: SeverityError, Message: "missing"}

	assert.Contains(t, issue.String(), "<unknown>")
}

func TestCountErrors(t *testing.T) {
	issues := []ValidationIssue{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
		{Severity: SeverityError},
	}

	assert.Equal(t, 2, CountErrors(issues))
	assert.Equal(t, 0, CountErrors(nil))
}

func TestIntegrityIssue_String(t *testing.T) {
	issue := IntegrityIssue{
		RecordID:     "condition-a",
		TargetID:     "condition-c",
		Relationship: RelationshipRelated,
	}

	s := issue.String()
	assert.Contains(t, s, "condition-a")
	assert.Contains(t, s, `"condition-c"`)
	assert.Contains(t, s, "related")
}

func TestDuplicateIDError_Error(t *testing.T) {
	t.Run("names every colliding record", func(t *testing.T) {
		err := &DuplicateIDError{ID: "dup", Names: []string{"Dialysis", "Diálisis"}}

		assert.Contains(t, err.Error(), `"dup"`)
		assert.Contains(t, err.Error(), "Dialysis")
		assert.Contains(t, err.Error(), "Diálisis")
	})

	t.Run("id only when names are unknown", func(t *testing.T) {
		err := &DuplicateIDError{ID: "dup"}

		assert.Equal(t, `duplicate record id "dup"`, err.Error())
	})
}

func TestDefaultValidationPolicy(t *testing.T) {
	policy := DefaultValidationPolicy()

	assert.True(t, policy.RequireAllLevels)
	assert.Equal(t, BilingualWarn, policy.Bilingual)
}
