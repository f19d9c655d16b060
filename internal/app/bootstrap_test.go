package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skill-match/internal/config"
	"skill-match/internal/infrastructure/cache"
	"skill-match/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNewContainerRequiresDatabase(t *testing.T) {
	_, err := NewContainer(config.Config{}, nil)
	assert.Error(t, err)
}

func TestBootstrapServesHealthWithoutBackends(t *testing.T) {
	c := &Container{
		Config: config.Config{App: config.AppConfig{AppName: "skill-match"}},
		Log:    zap.NewNop(),
		Cache:  cache.NewRedis(t.Context(), config.RedisConfig{}, nil),
		Hub:    ws.NewHub(nil),
	}

	app, cleanup, err := Bootstrap(c)
	require.NoError(t, err)
	defer cleanup()

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
