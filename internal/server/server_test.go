package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/catalog"
	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/game"
	"github.com/steppeworks/CryptoAul_Go/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat, err := catalog.Load(context.Background(), catalog.Paths{
		Assets:       "../../configs/assets.json",
		QuestPool:    "../../configs/quest_pool.json",
		Achievements: "../../configs/achievements.json",
		Market:       "../../configs/market.json",
	})
	require.NoError(t, err)

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	require.NoError(t, err)

	svc := game.NewService(cat, store, event.NewMemoryBus(), domain.NewInitialState())
	return NewServer(0, "test", "test", store, svc, cat)
}

func TestRouterHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestRouterSecurityHeadersApplied(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouterGetState(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var state domain.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.InDelta(t, domain.InitialBalance, state.Balance, 1e-9)
}

func TestRouterBuyAndCollectFlow(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(map[string]string{"defId": "chicken"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assets/buy", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var state domain.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Inventory, 1)

	// Freshly bought assets start on cooldown
	body, err = json.Marshal(map[string]string{"instanceId": state.Inventory[0].InstanceID})
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assets/collect", bytes.NewReader(body)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouterCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/catalog/assets", "/api/v1/catalog/achievements", "/api/v1/market/listings"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
