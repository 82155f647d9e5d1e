package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Wireless Mouse", product.Name)
		assert.Equal(t, "WM-100", product.SKU)
		assert.Equal(t, ProductTypeSimple, product.Type)
		assert.Equal(t, ProductStatusDraft, product.Status)
		assert.True(t, product.RegularPrice.IsZero())
		assert.Nil(t, product.RemoteID)
		assert.Nil(t, product.StockQuantity)
		assert.Nil(t, product.LastSyncedAt)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("converts SKU to uppercase", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "wm-100", ProductTypeSimple)
		require.NoError(t, err)
		assert.Equal(t, "WM-100", product.SKU)
	})

	t.Run("defaults to simple type", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", "")
		require.NoError(t, err)
		assert.Equal(t, ProductTypeSimple, product.Type)
	})

	t.Run("allows empty SKU", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "", ProductTypeSimple)
		require.NoError(t, err)
		assert.Empty(t, product.SKU)
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, product.SKU, event.SKU)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "WM-100", ProductTypeSimple)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with invalid SKU characters", func(t *testing.T) {
		_, err := NewProduct("Wireless Mouse", "WM 100!", ProductTypeSimple)
		require.Error(t, err)
	})
}

func TestProduct_SetPrices(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
	require.NoError(t, err)

	t.Run("sets regular and sale prices", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(50), decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.True(t, product.RegularPrice.Equal(decimal.NewFromInt(50)))
		assert.True(t, product.SalePrice.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(-1), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects sale price above regular price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(10), decimal.NewFromInt(20))
		require.Error(t, err)
	})
}

func TestProduct_SetStock(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
	require.NoError(t, err)

	t.Run("zero quantity is distinct from untracked", func(t *testing.T) {
		qty := 0
		err := product.SetStock(true, &qty, StockStatusOutOfStock)
		require.NoError(t, err)
		require.NotNil(t, product.StockQuantity)
		assert.Equal(t, 0, *product.StockQuantity)
	})

	t.Run("nil quantity clears tracking", func(t *testing.T) {
		err := product.SetStock(false, nil, StockStatusInStock)
		require.NoError(t, err)
		assert.Nil(t, product.StockQuantity)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		qty := -1
		err := product.SetStock(true, &qty, StockStatusInStock)
		require.Error(t, err)
	})

	t.Run("rejects unknown stock status", func(t *testing.T) {
		err := product.SetStock(true, nil, "backordered")
		require.Error(t, err)
	})
}

func TestProduct_SetStatus(t *testing.T) {
	t.Run("publish and archive transitions", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)
		product.ClearDomainEvents()

		require.NoError(t, product.Publish())
		assert.Equal(t, ProductStatusPublished, product.Status)
		assert.True(t, product.IsPublished())

		require.NoError(t, product.Archive())
		assert.Equal(t, ProductStatusArchived, product.Status)

		events := product.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeProductStatusChanged, events[0].EventType())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)
		product.ClearDomainEvents()

		require.NoError(t, product.SetStatus(ProductStatusDraft))
		assert.Empty(t, product.GetDomainEvents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)
		require.Error(t, product.SetStatus("retired"))
	})
}

func TestProduct_LinkRemote(t *testing.T) {
	t.Run("links once and stays idempotent", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)

		require.NoError(t, product.LinkRemote(42))
		require.NotNil(t, product.RemoteID)
		assert.EqualValues(t, 42, *product.RemoteID)
		assert.True(t, product.IsLinked())

		require.NoError(t, product.LinkRemote(42))
	})

	t.Run("rejects relinking to a different remote identifier", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)

		require.NoError(t, product.LinkRemote(42))
		err = product.LinkRemote(43)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already linked")
	})

	t.Run("rejects non-positive identifier", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
		require.NoError(t, err)
		require.Error(t, product.LinkRemote(0))
	})
}

func TestProduct_MarkSynced(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
	require.NoError(t, err)

	now := time.Now()
	product.MarkSynced(now)
	require.NotNil(t, product.LastSyncedAt)
	assert.Equal(t, now, *product.LastSyncedAt)
}

func TestProduct_UpdateRatingScore(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
	require.NoError(t, err)
	product.ClearDomainEvents()

	product.UpdateRatingScore(87.5)
	assert.Equal(t, 87.5, product.RatingScore)

	events := product.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeProductScored, events[0].EventType())
}

func TestProduct_EffectivePrice(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", "WM-100", ProductTypeSimple)
	require.NoError(t, err)

	require.NoError(t, product.SetPrices(decimal.NewFromInt(50), decimal.Zero))
	assert.True(t, product.EffectivePrice().Equal(decimal.NewFromInt(50)))

	require.NoError(t, product.SetPrices(decimal.NewFromInt(50), decimal.NewFromInt(35)))
	assert.True(t, product.EffectivePrice().Equal(decimal.NewFromInt(35)))
}
