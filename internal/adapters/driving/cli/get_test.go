package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

func TestGetCmd_Use(t *testing.T) {
	assert.Equal(t, "get [id]", getCmd.Use)
}

func TestGetCmd_PrintsRecord(t *testing.T) {
	record := fixtureRecord("condition-tb", "Tuberculosis", "TB")
	record.CrossReferences = []domain.CrossReference{
		{TargetID: "condition-hiv", Relationship: domain.RelationshipRelated, Label: "Co-infection"},
	}
	cleanup := setupTestServices(t, record, fixtureRecord("condition-hiv", "HIV"))
	defer cleanup()

	out, err := execute(t, "get", "condition-tb")

	require.NoError(t, err)
	assert.Contains(t, out, "Tuberculosis")
	assert.Contains(t, out, "Simple summary")
	assert.Contains(t, out, "Resumen sencillo")
	assert.Contains(t, out, "condition-hiv")
}

func TestGetCmd_UnknownID(t *testing.T) {
	cleanup := setupTestServices(t, fixtureRecord("condition-tb", "Tuberculosis"))
	defer cleanup()

	_, err := execute(t, "get", "condition-leprosy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "condition-leprosy")
}

func TestGetCmd_SingleLevel(t *testing.T) {
	cleanup := setupTestServices(t, fixtureRecord("condition-tb", "Tuberculosis"))
	defer cleanup()
	defer func() { getLevel = 0 }()

	t.Run("existing level", func(t *testing.T) {
		out, err := execute(t, "get", "condition-tb", "--level", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "Level 1")
		assert.Contains(t, out, "A short explanation.")
	})

	t.Run("missing level", func(t *testing.T) {
		_, err := execute(t, "get", "condition-tb", "--level", "4")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no level 4")
	})
}

func TestGetCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t, fixtureRecord("condition-tb", "Tuberculosis"))
	defer cleanup()
	defer func() { getJSON = false }()

	out, err := execute(t, "get", "condition-tb", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, "\"id\": \"condition-tb\"")
	assert.Contains(t, out, "\"es\": \"Resumen sencillo\"")
}
