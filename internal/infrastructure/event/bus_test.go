package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pim/backend/tests/testutil"
)

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := testutil.NewMockEventHandler("product.created")
	bus.Subscribe(handler, "product.created")

	event := testutil.NewTestEvent("product.created")
	err := bus.Publish(context.Background(), event)

	require.NoError(t, err)
	require.Equal(t, 1, handler.HandledCount())
	assert.Equal(t, event.EventID(), handler.Handled()[0].EventID())
}

func TestInMemoryEventBus_Publish_MultipleEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := testutil.NewMockEventHandler("product.published")
	bus.Subscribe(handler, "product.published")

	err := bus.Publish(context.Background(),
		testutil.NewTestEvent("product.published"),
		testutil.NewTestEvent("product.published"))

	require.NoError(t, err)
	assert.Equal(t, 2, handler.HandledCount())
}

func TestInMemoryEventBus_Publish_MultipleHandlers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler1 := testutil.NewMockEventHandler("category.created")
	handler2 := testutil.NewMockEventHandler("category.created")
	bus.Subscribe(handler1, "category.created")
	bus.Subscribe(handler2, "category.created")

	err := bus.Publish(context.Background(), testutil.NewTestEvent("category.created"))

	require.NoError(t, err)
	assert.Equal(t, 1, handler1.HandledCount())
	assert.Equal(t, 1, handler2.HandledCount())
}

func TestInMemoryEventBus_Publish_WildcardHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	// No event types subscribes to everything
	wildcard := testutil.NewMockEventHandler()
	bus.Subscribe(wildcard)

	err := bus.Publish(context.Background(), testutil.NewTestEvent("product.archived"))

	require.NoError(t, err)
	assert.Equal(t, 1, wildcard.HandledCount())
}

func TestInMemoryEventBus_Publish_HandlerError(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := testutil.NewMockEventHandler("product.created")
	failing.SetError(errors.New("handler error"))
	healthy := testutil.NewMockEventHandler("product.created")
	bus.Subscribe(failing, "product.created")
	bus.Subscribe(healthy, "product.created")

	err := bus.Publish(context.Background(), testutil.NewTestEvent("product.created"))

	// One handler failing never blocks the others
	require.NoError(t, err)
	assert.Equal(t, 1, failing.HandledCount())
	assert.Equal(t, 1, healthy.HandledCount())
}

func TestInMemoryEventBus_Publish_NoMatchingHandlers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := testutil.NewMockEventHandler("category.deleted")
	bus.Subscribe(handler, "category.deleted")

	err := bus.Publish(context.Background(), testutil.NewTestEvent("product.created"))

	require.NoError(t, err)
	assert.Equal(t, 0, handler.HandledCount())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := testutil.NewMockEventHandler("product.created")
	bus.Subscribe(handler, "product.created")

	_ = bus.Publish(context.Background(), testutil.NewTestEvent("product.created"))
	require.Equal(t, 1, handler.HandledCount())

	bus.Unsubscribe(handler)

	_ = bus.Publish(context.Background(), testutil.NewTestEvent("product.created"))
	assert.Equal(t, 1, handler.HandledCount())
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))

	handler := testutil.NewMockEventHandler("product.created")
	bus.Subscribe(handler, "product.created")
	require.NoError(t, bus.Publish(ctx, testutil.NewTestEvent("product.created")))
	assert.True(t, testutil.WaitForEventCount(t, handler, 1, time.Second))

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(stopCtx))
}
