package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"truckdeals-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthTest(t *testing.T) (*Handlers, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &Handlers{Rdb: rdb, HealthAdminKey: "secret"}, mr
}

func TestReset_WrongKey(t *testing.T) {
	h, _ := setupHealthTest(t)
	app := fiber.New()
	app.Get("/reset", h.Reset)

	req := httptest.NewRequest("GET", "/reset?key=wrong", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestReset_ClearsCounters(t *testing.T) {
	h, mr := setupHealthTest(t)
	app := fiber.New()
	app.Get("/reset", h.Reset)

	require.NoError(t, mr.Set(middleware.KeyReqTotal, "42"))

	req := httptest.NewRequest("GET", "/reset?key=secret", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.False(t, mr.Exists(middleware.KeyReqTotal))
	assert.True(t, mr.Exists(middleware.KeyStartTime))
}

func TestJSON_ReportsService(t *testing.T) {
	h, _ := setupHealthTest(t)
	app := fiber.New()
	app.Get("/health/json", h.JSON)

	req := httptest.NewRequest("GET", "/health/json", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "truckdeals-api", result["service"])
	assert.NotNil(t, result["dependencies"])
}

func TestErrors_EmptyLog(t *testing.T) {
	h, _ := setupHealthTest(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	req := httptest.NewRequest("GET", "/health/errors", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Empty(t, result)
}

func TestErrors_ReturnsLoggedEntries(t *testing.T) {
	h, mr := setupHealthTest(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	entry, _ := json.Marshal(map[string]interface{}{"path": "/api/v1/listings/get-listings", "status": 500})
	_, err := mr.Lpush(middleware.KeyErrorLog, string(entry))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/health/errors", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var result []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result, 1)
	assert.Equal(t, "/api/v1/listings/get-listings", result[0]["path"])
}
