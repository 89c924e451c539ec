package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func TestDecodePayloadPassesStructThrough(t *testing.T) {
	payload := domain.QuestClaimedPayload{QuestID: "q1", Reward: 15}

	got, err := DecodePayload[domain.QuestClaimedPayload](payload)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodePayloadFromSerializedMap(t *testing.T) {
	payload := map[string]interface{}{
		"instance_id": "i1",
		"def_id":      "chicken",
		"amount":      0.25,
	}

	got, err := DecodePayload[domain.IncomeCollectedPayload](payload)
	require.NoError(t, err)
	assert.Equal(t, "i1", got.InstanceID)
	assert.Equal(t, "chicken", got.DefID)
	assert.InDelta(t, 0.25, got.Amount, 1e-9)
}

func TestDecodePayloadUnmarshalable(t *testing.T) {
	_, err := DecodePayload[domain.IncomeCollectedPayload](make(chan int))
	assert.Error(t, err)
}
