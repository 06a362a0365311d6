package handler

import (
	"database/sql"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linguaweb/internal/http/middleware"
	"linguaweb/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app. Handlers
// stay thin; everything beyond parameter parsing lives in the service layer.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	wordSvc service.WordService,
	adminKey string,
	egress EgressCheck,
	reg *prometheus.Registry,
) {
	// Swagger UI and the spec it renders.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>LinguaWeb API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/docs", fiber.StatusTemporaryRedirect)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	v1 := app.Group("/api/v1")

	v1.Get("/health", HealthCheck())
	v1.Get("/health/connectivity", ConnectivityCheck(db, egress))

	v1.Get("/words", ListWordIDs(wordSvc))
	v1.Get("/words/download/:id", DownloadAudio(wordSvc))
	v1.Get("/words/:id", GetWord(wordSvc))
	v1.Post("/words/check/:id", CheckWord(wordSvc))

	admin := v1.Group("/admin", middleware.APIKeyAuth(adminKey))
	admin.Post("/add_word", AddWord(wordSvc))
	admin.Post("/add_preset_words", AddPresetWords(wordSvc))
}
