package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"moneta-backend/internal/database"
	"moneta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, Seed(db))

	h := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	app.Get("/api/v1/catalog/list-instruments", h.ListInstruments)
	app.Get("/api/v1/catalog/view-instrument/:symbol", h.ViewInstrument)
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSeed_Idempotent(t *testing.T) {
	_, db := setupCatalog(t)

	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&models.Instrument{}).Count(&count).Error)
	assert.Equal(t, int64(21), count)
}

func TestListInstruments_All(t *testing.T) {
	app, _ := setupCatalog(t)

	status, body := get(t, app, "/api/v1/catalog/list-instruments")
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].([]interface{})
	assert.Len(t, data, 21)
}

func TestListInstruments_FilterByCategory(t *testing.T) {
	app, _ := setupCatalog(t)

	status, body := get(t, app, "/api/v1/catalog/list-instruments?category=savings")
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 4)
	for _, raw := range data {
		inst := raw.(map[string]interface{})
		assert.Equal(t, "savings", inst["category"])
		assert.NotEmpty(t, inst["bank"])
	}
}

func TestListInstruments_UnknownCategory(t *testing.T) {
	app, _ := setupCatalog(t)

	status, body := get(t, app, "/api/v1/catalog/list-instruments?category=commodity")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])
}

func TestViewInstrument(t *testing.T) {
	app, _ := setupCatalog(t)

	status, body := get(t, app, "/api/v1/catalog/view-instrument/KTB-10Y")
	require.Equal(t, fiber.StatusOK, status)
	inst := body["data"].(map[string]interface{})
	assert.Equal(t, "Korea Treasury Bond 10Y", inst["name"])
	assert.Equal(t, "AAA", inst["rating"])
	assert.InDelta(t, 3.2, inst["yield_rate"].(float64), 1e-9)
}

func TestViewInstrument_NotFound(t *testing.T) {
	app, _ := setupCatalog(t)

	status, body := get(t, app, "/api/v1/catalog/view-instrument/NOPE")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", body["status"])
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("real-estate")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
