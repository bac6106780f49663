package calculation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"kasko-gateway/internal/elt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCalcApp(t *testing.T, calc elt.Calculator, guarantee *fakeGuarantee) (*fiber.App, *Service) {
	t.Helper()
	s := setupService(t, calc, guarantee)
	h := &Handlers{Service: s}
	app := fiber.New()
	app.Post("/kasko-calculation", h.Calculate)
	app.Get("/insurance-accepted", h.AcceptedQuotes)
	app.Get("/insurance", h.RunQuotes)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestCalculateHandler_Success(t *testing.T) {
	outcomes, companies := fourCompanies()
	app, _ := setupCalcApp(t, &fakeCalculator{outcomes: outcomes}, okGuarantee())

	code, out := postJSON(t, app, "/kasko-calculation", fiber.Map{
		"calc_reso_id":     500,
		"active_companies": companies,
		"Mark":             "Kia",
	})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "SUCCESS", out["status"])

	data := out["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["quote_id"])
	assert.Equal(t, float64(7), data["police_id"])

	results := data["results"].([]interface{})
	require.Len(t, results, 4)
	first := results[0].(map[string]interface{})
	assert.Equal(t, companies[0], first["company"])
}

func TestCalculateHandler_MissingFields(t *testing.T) {
	app, _ := setupCalcApp(t, &fakeCalculator{}, okGuarantee())

	code, out := postJSON(t, app, "/kasko-calculation", fiber.Map{"calc_reso_id": 500})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "ERROR", out["status"])
}

func TestCalculateHandler_RejectionCarriesAggregateDetails(t *testing.T) {
	calc := &fakeCalculator{outcomes: map[string]elt.Outcome{
		"РЕСО": {Result: &elt.CalcResult{CalcID: 101}},
	}}
	app, _ := setupCalcApp(t, calc, okGuarantee())

	code, out := postJSON(t, app, "/kasko-calculation", fiber.Map{
		"calc_reso_id":     500,
		"active_companies": []string{"РЕСО", "Упавшая1", "Упавшая2"},
	})
	require.Equal(t, fiber.StatusBadRequest, code)

	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, MsgTooFewSuccesses, errObj["message"])

	details := errObj["details"].([]interface{})
	require.Len(t, details, 3)
	entry := details[0].(map[string]interface{})
	assert.Equal(t, "РЕСО", entry["company"])
	assert.Equal(t, "SUCCESS", entry["status"])
}

func TestAcceptedQuotesHandler(t *testing.T) {
	outcomes, companies := fourCompanies()
	app, _ := setupCalcApp(t, &fakeCalculator{outcomes: outcomes}, okGuarantee())

	code, _ := postJSON(t, app, "/kasko-calculation", fiber.Map{
		"calc_reso_id":     500,
		"active_companies": companies,
	})
	require.Equal(t, fiber.StatusOK, code)

	resp, err := app.Test(httptest.NewRequest("GET", "/insurance-accepted?calc_id=101", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	quotes := out["data"].([]interface{})
	assert.Len(t, quotes, 4)
}

func TestAcceptedQuotesHandler_MissingParam(t *testing.T) {
	app, _ := setupCalcApp(t, &fakeCalculator{}, okGuarantee())
	resp, err := app.Test(httptest.NewRequest("GET", "/insurance-accepted", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRunQuotesHandler_NotFound(t *testing.T) {
	app, _ := setupCalcApp(t, &fakeCalculator{}, okGuarantee())
	resp, err := app.Test(httptest.NewRequest("GET", "/insurance?calc_reso_id=999", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Расчет не найден", out["error"].(map[string]interface{})["message"])
}
