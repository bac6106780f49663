package cars

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"kasko-gateway/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCarsApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	s := setupCarsService(t)
	h := &Handlers{Service: s}
	app := fiber.New()
	app.Get("/cars", h.List)
	app.Post("/cars/import", h.Import)
	return app, s
}

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportHandler_Success(t *testing.T) {
	app, s := setupCarsApp(t)

	data := buildXLSX(t, [][]string{
		carsHeader,
		{"Kia", "Rio", "1.6 MT", "KIA", "RIO", "A"},
	})
	body, contentType := multipartFile(t, "file", "cars.xlsx", data)

	req := httptest.NewRequest("POST", "/cars/import", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Cars imported", out["message"])
	assert.Equal(t, float64(1), out["data"].(map[string]interface{})["imported"])

	cars, err := s.List(req.Context(), "", "")
	require.NoError(t, err)
	assert.Len(t, cars, 1)
}

func TestImportHandler_MissingFile(t *testing.T) {
	app, _ := setupCarsApp(t)

	req := httptest.NewRequest("POST", "/cars/import", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImportHandler_BadSpreadsheet(t *testing.T) {
	app, _ := setupCarsApp(t)

	body, contentType := multipartFile(t, "file", "cars.xlsx", []byte("garbage"))
	req := httptest.NewRequest("POST", "/cars/import", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListHandler_Filters(t *testing.T) {
	app, s := setupCarsApp(t)
	require.NoError(t, s.DB.Create(&[]models.Car{
		{Brand: "Kia", Model: "Rio"},
		{Brand: "Lada", Model: "Vesta"},
	}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/cars?brand=lada", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	cars := out["data"].([]interface{})
	require.Len(t, cars, 1)
	assert.Equal(t, "Lada", cars[0].(map[string]interface{})["brand"])
}
