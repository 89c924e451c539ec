package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func TestMemoryBusDeliversTypedPayload(t *testing.T) {
	bus := NewMemoryBus()
	var got domain.AssetBoughtPayload

	bus.Subscribe(Type(domain.EventTypeAssetBought), func(_ context.Context, ev Event) error {
		var err error
		got, err = DecodePayload[domain.AssetBoughtPayload](ev.Payload)
		return err
	})

	ev := NewAssetBoughtEvent("i1", "cow", domain.CategoryLivestock, 50)
	require.NoError(t, bus.Publish(context.Background(), ev))

	assert.Equal(t, EventSchemaVersion, ev.Version)
	assert.Equal(t, "i1", got.InstanceID)
	assert.Equal(t, "cow", got.DefID)
	assert.Equal(t, string(domain.CategoryLivestock), got.Category)
	assert.InDelta(t, 50, got.Price, 1e-9)
}

func TestMemoryBusFanOut(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	handler := func(_ context.Context, _ Event) error {
		calls++
		return nil
	}
	bus.Subscribe(Type(domain.EventTypeDepositCompleted), handler)
	bus.Subscribe(Type(domain.EventTypeDepositCompleted), handler)

	require.NoError(t, bus.Publish(context.Background(), NewDepositCompletedEvent(100, 300)))
	assert.Equal(t, 2, calls)
}

func TestMemoryBusNoSubscribersIsNotAnError(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewQuestClaimedEvent("q1", 15)))
}

func TestMemoryBusAggregatesHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	healthyCalled := false

	bus.Subscribe(Type(domain.EventTypeReferralJoined), func(_ context.Context, _ Event) error {
		return errors.New("subscriber down")
	})
	bus.Subscribe(Type(domain.EventTypeReferralJoined), func(_ context.Context, _ Event) error {
		healthyCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewReferralJoinedEvent(50, 50))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 handlers failed")
	assert.True(t, healthyCalled, "a failing handler must not block the others")
}
