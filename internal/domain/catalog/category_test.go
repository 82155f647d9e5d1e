package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with explicit slug", func(t *testing.T) {
		category, err := NewCategory("Office Supplies", "office-supplies")
		require.NoError(t, err)

		assert.Equal(t, "Office Supplies", category.Name)
		assert.Equal(t, "office-supplies", category.Slug)
		assert.Nil(t, category.ParentID)
		assert.Nil(t, category.RemoteID)
		assert.True(t, category.IsRoot())
	})

	t.Run("derives slug from name when empty", func(t *testing.T) {
		category, err := NewCategory("Office Supplies", "")
		require.NoError(t, err)
		assert.Equal(t, "office-supplies", category.Slug)
	})

	t.Run("normalizes slug characters", func(t *testing.T) {
		category, err := NewCategory("Books & Media", "Books & Media!")
		require.NoError(t, err)
		assert.Equal(t, "books-media", category.Slug)
	})

	t.Run("publishes CategoryCreated event", func(t *testing.T) {
		category, err := NewCategory("Office Supplies", "")
		require.NoError(t, err)

		events := category.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCategoryCreated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("", "")
		require.Error(t, err)
	})
}

func TestCategory_SetParent(t *testing.T) {
	t.Run("sets and clears parent", func(t *testing.T) {
		category, err := NewCategory("Pens", "")
		require.NoError(t, err)

		parentID := uuid.New()
		require.NoError(t, category.SetParent(&parentID))
		require.NotNil(t, category.ParentID)
		assert.Equal(t, parentID, *category.ParentID)
		assert.False(t, category.IsRoot())

		require.NoError(t, category.SetParent(nil))
		assert.True(t, category.IsRoot())
	})

	t.Run("rejects self as parent", func(t *testing.T) {
		category, err := NewCategory("Pens", "")
		require.NoError(t, err)

		err = category.SetParent(&category.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own parent")
	})
}

func TestCategory_LinkRemote(t *testing.T) {
	category, err := NewCategory("Pens", "")
	require.NoError(t, err)

	require.NoError(t, category.LinkRemote(7))
	require.NotNil(t, category.RemoteID)
	assert.EqualValues(t, 7, *category.RemoteID)

	require.NoError(t, category.LinkRemote(7))
	require.Error(t, category.LinkRemote(8))
}

func TestCategory_Update(t *testing.T) {
	category, err := NewCategory("Pens", "")
	require.NoError(t, err)
	category.ClearDomainEvents()

	require.NoError(t, category.Update("Writing Instruments", "writing-instruments", "Pens and pencils"))
	assert.Equal(t, "Writing Instruments", category.Name)
	assert.Equal(t, "writing-instruments", category.Slug)
	assert.Equal(t, "Pens and pencils", category.Description)
	assert.Equal(t, 2, category.GetVersion())

	events := category.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeCategoryUpdated, events[0].EventType())
}
