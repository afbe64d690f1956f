package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// DocsHandler serves the machine-readable API schema and an interactive
// documentation page.
type DocsHandler struct {
	title   string
	version string
}

func NewDocsHandler(title, version string) *DocsHandler {
	return &DocsHandler{title: title, version: version}
}

// HandleOpenAPI handles GET /api/v1/openapi.json.
func (h *DocsHandler) HandleOpenAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"openapi": "3.0.3",
		"info": fiber.Map{
			"title":       h.title,
			"description": "API for parsing CVs into structured JSON using AI",
			"version":     h.version,
		},
		"paths": fiber.Map{
			"/api/v1/cv/parse": fiber.Map{
				"post": fiber.Map{
					"summary": "Parse an uploaded CV (PDF or DOC/DOCX) into structured JSON",
					"requestBody": fiber.Map{
						"required": true,
						"content": fiber.Map{
							"multipart/form-data": fiber.Map{
								"schema": fiber.Map{
									"type": "object",
									"properties": fiber.Map{
										"file": fiber.Map{
											"type":   "string",
											"format": "binary",
										},
									},
									"required": []string{"file"},
								},
							},
						},
					},
					"responses": fiber.Map{
						"200": fiber.Map{"description": "Structured CV with per-stage processing times"},
						"400": fiber.Map{"description": "Invalid file type or malformed upload"},
						"422": fiber.Map{"description": "Document text could not be extracted"},
						"429": fiber.Map{"description": "Rate limit exceeded"},
						"500": fiber.Map{"description": "Structuring model failure"},
					},
				},
			},
			"/api/v1/health": fiber.Map{
				"get": fiber.Map{
					"summary": "Health check",
					"responses": fiber.Map{
						"200": fiber.Map{"description": "Service is healthy"},
					},
				},
			},
		},
	})
}

// HandleSwaggerUI handles GET /docs.
func (h *DocsHandler) HandleSwaggerUI(c *fiber.Ctx) error {
	const page = `<!DOCTYPE html>
<html>
<head>
    <title>CV Parser API - Swagger UI</title>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.9.0/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/api/v1/openapi.json",
            dom_id: "#swagger-ui"
        });
    </script>
</body>
</html>`

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}
