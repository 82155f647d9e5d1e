package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttribute(t *testing.T) {
	t.Run("creates attribute with defaults", func(t *testing.T) {
		attr, err := NewAttribute("Color", "", AttributeTypeSelect)
		require.NoError(t, err)

		assert.Equal(t, "Color", attr.Name)
		assert.Equal(t, "color", attr.Slug)
		assert.Equal(t, "Color", attr.Label)
		assert.Equal(t, AttributeTypeSelect, attr.Type)
		assert.True(t, attr.Visible)
		assert.False(t, attr.UsedForVariation)
	})

	t.Run("defaults to text type", func(t *testing.T) {
		attr, err := NewAttribute("Material", "", "")
		require.NoError(t, err)
		assert.Equal(t, AttributeTypeText, attr.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewAttribute("Material", "", "dropdown")
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAttribute("", "", AttributeTypeText)
		require.Error(t, err)
	})
}

func TestAttribute_AddValue(t *testing.T) {
	t.Run("appends vocabulary entries in order", func(t *testing.T) {
		attr, err := NewAttribute("Color", "", AttributeTypeSelect)
		require.NoError(t, err)

		red, err := attr.AddValue("Red")
		require.NoError(t, err)
		blue, err := attr.AddValue("Blue")
		require.NoError(t, err)

		assert.Equal(t, 0, red.SortOrder)
		assert.Equal(t, 1, blue.SortOrder)
		assert.Len(t, attr.Values, 2)
		assert.Equal(t, attr.ID, red.AttributeID)
	})

	t.Run("rejects duplicates case-insensitively", func(t *testing.T) {
		attr, err := NewAttribute("Color", "", AttributeTypeSelect)
		require.NoError(t, err)

		_, err = attr.AddValue("Red")
		require.NoError(t, err)
		_, err = attr.AddValue("red")
		require.Error(t, err)
	})

	t.Run("rejects vocabulary on non-select attributes", func(t *testing.T) {
		attr, err := NewAttribute("Material", "", AttributeTypeText)
		require.NoError(t, err)

		_, err = attr.AddValue("Wood")
		require.Error(t, err)
	})
}

func TestNewProductAttributeValue(t *testing.T) {
	productID := uuid.New()
	attributeID := uuid.New()

	t.Run("creates assignment with flags", func(t *testing.T) {
		pav, err := NewProductAttributeValue(productID, attributeID, "Red", true, true)
		require.NoError(t, err)

		assert.Equal(t, productID, pav.ProductID)
		assert.Equal(t, attributeID, pav.AttributeID)
		assert.Equal(t, "Red", pav.Value)
		assert.True(t, pav.Visible)
		assert.True(t, pav.UsedForVariation)
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := NewProductAttributeValue(productID, attributeID, "", true, false)
		require.Error(t, err)
	})
}
