package health

import (
	"context"

	"kasko-gateway/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers holds dependencies for the health endpoints.
type Handlers struct {
	Rdb     *redis.Client
	DB      DBPinger
	EltURL  string
	ResoURL string
}

// Live GET /health — cheap liveness probe.
func (h *Handlers) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// JSON GET /health/json — full dependency and traffic report.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	ctx := context.Background()
	result := CollectHealth(ctx, h.Rdb, h.DB, h.EltURL, h.ResoURL)
	out := map[string]interface{}{
		"service":      "kasko-gateway",
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"dependencies": result.Dependencies,
	}
	return c.JSON(out)
}

// Reset GET /health/reset — clears traffic counters.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	ctx := context.Background()
	keys := []string{middleware.KeyReqTotal, middleware.KeyReqErrors, middleware.KeyLastReq, middleware.KeyStartTime}
	if err := h.Rdb.Del(ctx, keys...).Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
