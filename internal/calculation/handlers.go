package calculation

import (
	"errors"
	"strconv"

	"kasko-gateway/internal/elt"
	"kasko-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Handlers exposes the multi-company calculation workflow.
type Handlers struct {
	Service *Service
}

// Calculate POST /api/v1/elt/kasko-calculation
func (h *Handlers) Calculate(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, elt.MsgMalformedRequest, 400, nil)
	}
	if req.CalcResoID == 0 || len(req.ActiveCompanies) == 0 {
		return response.Error(c, "calc_reso_id and active_companies are required", 400, nil)
	}

	result, err := h.Service.Run(c.Context(), &req)
	if err != nil {
		var rej *Rejection
		if errors.As(err, &rej) {
			return response.Error(c, rej.Message, 400, rej.Details)
		}
		log.Error().Err(err).Msg("kasko calculation failed")
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "", result)
}

// AcceptedQuotes GET /api/v1/elt/insurance-accepted?calc_id=
func (h *Handlers) AcceptedQuotes(c *fiber.Ctx) error {
	calcID, err := strconv.ParseInt(c.Query("calc_id"), 10, 64)
	if err != nil {
		return response.Error(c, "calc_id is required", 400, nil)
	}
	quotes, err := h.Service.Store.AcceptedQuotes(c.Context(), calcID)
	if err != nil {
		log.Error().Err(err).Int64("calc_id", calcID).Msg("failed to load accepted quotes")
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "", quotes)
}

// RunQuotes GET /api/v1/elt/insurance?calc_reso_id=
func (h *Handlers) RunQuotes(c *fiber.Ctx) error {
	calcResoID, err := strconv.ParseInt(c.Query("calc_reso_id"), 10, 64)
	if err != nil {
		return response.Error(c, "calc_reso_id is required", 400, nil)
	}
	quotes, err := h.Service.Store.QuotesByCalcResoID(c.Context(), calcResoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Error(c, "Расчет не найден", 404, nil)
		}
		log.Error().Err(err).Int64("calc_reso_id", calcResoID).Msg("failed to load run quotes")
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "", quotes)
}
