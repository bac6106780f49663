package cars

import (
	"io"

	"kasko-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers exposes the vehicle reference table.
type Handlers struct {
	Service *Service
}

// List GET /api/v1/cars?brand=&model=
func (h *Handlers) List(c *fiber.Ctx) error {
	cars, err := h.Service.List(c.Context(), c.Query("brand"), c.Query("model"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list cars")
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "", cars)
}

// Import POST /api/v1/cars/import — multipart upload, admin only.
func (h *Handlers) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, "file is required", 400, nil)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, "file is required", 400, nil)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return response.Error(c, "failed to read file", 400, nil)
	}

	count, err := h.Service.ImportXLSX(c.Context(), data)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	return response.Success(c, "Cars imported", fiber.Map{"imported": count})
}
