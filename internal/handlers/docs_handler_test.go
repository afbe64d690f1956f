package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-parser/internal/handlers"
)

func TestHandleOpenAPI(t *testing.T) {
	app := fiber.New()
	h := handlers.NewDocsHandler("CV Parser API", "1.0.0")
	app.Get("/api/v1/openapi.json", h.HandleOpenAPI)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/cv/parse")
}

func TestHandleSwaggerUI(t *testing.T) {
	app := fiber.New()
	h := handlers.NewDocsHandler("CV Parser API", "1.0.0")
	app.Get("/docs", h.HandleSwaggerUI)

	req, _ := http.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "swagger-ui")
	assert.Contains(t, string(body), "/api/v1/openapi.json")
}
