package elt

import (
	"kasko-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the ELT reference lookups and single-company calculations.
type Handlers struct {
	Client *Client
}

// GetMarks GET /api/v1/elt/casco-get-marks
func (h *Handlers) GetMarks(c *fiber.Ctx) error {
	marks, err := h.Client.GetAutoMarks(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", marks)
}

// GetModels GET /api/v1/elt/casco-get-mark?mark_name=
func (h *Handlers) GetModels(c *fiber.Ctx) error {
	mark := c.Query("mark_name")
	if mark == "" {
		return response.Error(c, "mark_name is required", 400, nil)
	}
	models, err := h.Client.GetAutoModels(c.Context(), mark)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", models)
}

// GetModifications GET /api/v1/elt/casco-get-modification-ts?mark_name=&model_name=
func (h *Handlers) GetModifications(c *fiber.Ctx) error {
	mark, model := c.Query("mark_name"), c.Query("model_name")
	if mark == "" || model == "" {
		return response.Error(c, "mark_name and model_name are required", 400, nil)
	}
	cars, err := h.Client.GetAutoModifications(c.Context(), mark, model)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"cars": cars})
}

// GetBanks GET /api/v1/elt/casco-get-banks
func (h *Handlers) GetBanks(c *fiber.Ctx) error {
	banks, err := h.Client.GetBanks(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"banks": banks})
}

// GetDO GET /api/v1/elt/casco-get-do
func (h *Handlers) GetDO(c *fiber.Ctx) error {
	types, err := h.Client.GetDOTypes(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"do": types})
}

// GetOPF GET /api/v1/elt/casco-get-opf
func (h *Handlers) GetOPF(c *fiber.Ctx) error {
	opf, err := h.Client.GetOPF(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"opf": opf})
}

// GetCompanies GET /api/v1/elt/casco-get-list-sk
func (h *Handlers) GetCompanies(c *fiber.Ctx) error {
	companies, err := h.Client.GetInsuranceCompanies(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"companies": companies})
}

// GetCompanyOptions GET /api/v1/elt/casco-get-options-characteristic?company_id=
func (h *Handlers) GetCompanyOptions(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return response.Error(c, "company_id is required", 400, nil)
	}
	options, err := h.Client.GetInsuranceCompanySpecificOptions(c.Context(), companyID)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"options": options})
}

// GetProducts GET /api/v1/elt/casco-get-products-sk?company_id=
func (h *Handlers) GetProducts(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return response.Error(c, "company_id is required", 400, nil)
	}
	products, err := h.Client.GetProducts(c.Context(), companyID)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"products": products})
}

// GetPrograms GET /api/v1/elt/casco-get-programs-sk?company_id=&product=
func (h *Handlers) GetPrograms(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return response.Error(c, "company_id is required", 400, nil)
	}
	programs, err := h.Client.GetPrograms(c.Context(), companyID, c.Query("product"))
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"programs": programs})
}

// GetPuuMarks GET /api/v1/elt/casco-get-puu-marks
func (h *Handlers) GetPuuMarks(c *fiber.Ctx) error {
	marks, err := h.Client.GetPUUMarks(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"puu_marks": marks})
}

// GetPuuModels GET /api/v1/elt/casco-get-puu-models?mark_id=
func (h *Handlers) GetPuuModels(c *fiber.Ctx) error {
	markID := c.Query("mark_id")
	if markID == "" {
		return response.Error(c, "mark_id is required", 400, nil)
	}
	models, err := h.Client.GetPUUModels(c.Context(), markID)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	if len(models) == 0 {
		return response.Error(c, "Модель не найдена", 404, nil)
	}
	return response.Success(c, "", fiber.Map{"puu_models": models})
}

// GetRefInfo GET /api/v1/elt/casco-get-ref-info
func (h *Handlers) GetRefInfo(c *fiber.Ctx) error {
	info, err := h.Client.GetOptions(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"ref_info": info})
}

// GetKladrRegions GET /api/v1/elt/casco-get-kladr-regions
func (h *Handlers) GetKladrRegions(c *fiber.Ctx) error {
	regions, err := h.Client.GetRegionsExt(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"regions": regions})
}

// GetCountries GET /api/v1/elt/casco-get-kladr-countries
func (h *Handlers) GetCountries(c *fiber.Ctx) error {
	countries, err := h.Client.GetCountries(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"countries": countries})
}

// GetSTOA GET /api/v1/elt/casco-get-stoa
func (h *Handlers) GetSTOA(c *fiber.Ctx) error {
	stoa, err := h.Client.GetSTOA(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"stoa": stoa})
}

// GetGOLimit GET /api/v1/elt/casco-get-go-limit?company_id=
func (h *Handlers) GetGOLimit(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return response.Error(c, "company_id is required", 400, nil)
	}
	limits, err := h.Client.GetGOLimit(c.Context(), companyID)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"go_limit": limits})
}

// GetPrintForms GET /api/v1/elt/casco-get-print-forms?order_id=
func (h *Handlers) GetPrintForms(c *fiber.Ctx) error {
	orderID := c.Query("order_id")
	if orderID == "" {
		return response.Error(c, "order_id is required", 400, nil)
	}
	forms, err := h.Client.GetAvailablePrintForms(c.Context(), orderID)
	if err != nil {
		return response.Error(c, err.Error(), 502, nil)
	}
	return response.Success(c, "", fiber.Map{"forms": forms})
}

// Calculation POST /api/v1/elt/casco-calculation?company= (preliminary)
func (h *Handlers) Calculation(c *fiber.Ctx) error {
	return h.singleCalculation(c, MethodPreliminary)
}

// FinishCalculation POST /api/v1/elt/finish-casco-calculation?company= (final)
func (h *Handlers) FinishCalculation(c *fiber.Ctx) error {
	return h.singleCalculation(c, MethodFinal)
}

func (h *Handlers) singleCalculation(c *fiber.Ctx, method string) error {
	company := c.Query("company")
	if company == "" {
		return response.Error(c, "company is required", 400, nil)
	}
	var params CalcParams
	if err := c.BodyParser(&params); err != nil {
		return response.Error(c, MsgMalformedRequest, 400, nil)
	}

	outcome := h.Client.Calculate(c.Context(), method, company, &params)
	if outcome.Failed() {
		return response.Error(c, outcome.Err, 400, nil)
	}
	if outcome.Result.Error != "" {
		return response.Error(c, outcome.Result.Error, 400, nil)
	}
	return response.Success(c, "", outcome.Result)
}
