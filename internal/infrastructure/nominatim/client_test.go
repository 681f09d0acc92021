package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
)

func testConfig(baseURL string) *config.GeocoderConfig {
	return &config.GeocoderConfig{
		BaseURL:        baseURL,
		UserAgent:      "skatespot-test/1.0",
		RequestTimeout: 2 * time.Second,
	}
}

func TestClient_ReverseGeocode(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reverse", r.URL.Path)
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "56.95", r.URL.Query().Get("lat"))
			assert.Equal(t, "24.1", r.URL.Query().Get("lon"))
			assert.Equal(t, "skatespot-test/1.0", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"display_name": "Krasta iela 1, Riga, Latvia",
				"address": {"city": "Riga"}
			}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		info, err := c.ReverseGeocode(context.Background(), 56.95, 24.1)
		require.NoError(t, err)
		assert.Equal(t, "Krasta iela 1, Riga, Latvia", info.Address)
		assert.Equal(t, "Riga", info.City)
	})

	t.Run("town fallback when city missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"display_name": "Skolas iela, Sigulda, Latvia",
				"address": {"town": "Sigulda"}
			}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		info, err := c.ReverseGeocode(context.Background(), 57.15, 24.85)
		require.NoError(t, err)
		assert.Equal(t, "Sigulda", info.City)
	})

	t.Run("unknown city when address empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"display_name": "Middle of nowhere", "address": {}}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		info, err := c.ReverseGeocode(context.Background(), 0.0001, 0.0001)
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownCity, info.City)
	})

	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		_, err := c.ReverseGeocode(context.Background(), 56.95, 24.1)
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		_, err := c.ReverseGeocode(context.Background(), 56.95, 24.1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrRateLimited)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ReverseGeocode(ctx, 56.95, 24.1)
		assert.Error(t, err)
	})
}
