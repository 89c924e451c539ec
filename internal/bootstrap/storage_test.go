package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

type stubStore struct {
	state *domain.GameState
	err   error
}

func (s *stubStore) Load(_ context.Context) (*domain.GameState, error) {
	return s.state, s.err
}

func (s *stubStore) Save(_ context.Context, _ *domain.GameState) error {
	return nil
}

func TestLoadInitialStateNoSave(t *testing.T) {
	state := LoadInitialState(context.Background(), &stubStore{})

	require.NotNil(t, state)
	assert.InDelta(t, domain.InitialBalance, state.Balance, 1e-9)
}

func TestLoadInitialStateUnreadableSaveFallsBack(t *testing.T) {
	state := LoadInitialState(context.Background(), &stubStore{err: errors.New("corrupt")})

	require.NotNil(t, state)
	assert.InDelta(t, domain.InitialBalance, state.Balance, 1e-9)
	assert.Empty(t, state.Inventory)
}

func TestLoadInitialStateExistingSave(t *testing.T) {
	saved := domain.NewInitialState()
	saved.Balance = 777

	state := LoadInitialState(context.Background(), &stubStore{state: saved})

	require.NotNil(t, state)
	assert.InDelta(t, 777.0, state.Balance, 1e-9)
}
