package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"kasko-gateway/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f *fakePinger) Ping() error { return f.err }

func setupHealthHandlers(t *testing.T) (*Handlers, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Handlers{Rdb: rdb, DB: &fakePinger{}}, rdb
}

func TestLive(t *testing.T) {
	h, _ := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health", h.Live)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJSON_ReturnsStructure(t *testing.T) {
	h, rdb := setupHealthHandlers(t)
	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqTotal, "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqErrors, "2", 0).Err())

	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "kasko-gateway", out["service"])
	assert.Equal(t, "ok", out["status"])

	traffic := out["traffic"].(map[string]interface{})
	assert.Equal(t, float64(10), traffic["totalRequests"])
	assert.Equal(t, float64(2), traffic["failedCount"])
	assert.Equal(t, float64(8), traffic["successCount"])
	assert.Equal(t, "80.0", traffic["successRate"])

	deps := out["dependencies"].(map[string]interface{})
	assert.Equal(t, "connected", deps["database"].(map[string]interface{})["status"])
	assert.Equal(t, "connected", deps["redis"].(map[string]interface{})["status"])
	// providers unset in tests
	assert.Equal(t, "unreachable", deps["elt"].(map[string]interface{})["status"])
}

func TestJSON_BrokenDatabaseReportsIssue(t *testing.T) {
	h, _ := setupHealthHandlers(t)
	h.DB = &fakePinger{err: errors.New("down")}

	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil), -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "issue", out["status"])
	deps := out["dependencies"].(map[string]interface{})
	assert.Equal(t, "error", deps["database"].(map[string]interface{})["status"])
}

func TestReset_ClearsCounters(t *testing.T) {
	h, rdb := setupHealthHandlers(t)
	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqTotal, "5", 0).Err())

	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	err = rdb.Get(ctx, middleware.KeyReqTotal).Err()
	assert.ErrorIs(t, err, redis.Nil)
}
