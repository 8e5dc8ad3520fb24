package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	apidocs "examdocs/docs"
)

// RegisterDocs serves the Swagger UI. Host and schemes are fixed once here,
// before the app starts taking requests.
func RegisterDocs(app *fiber.App, host string, schemes ...string) {
	if len(schemes) == 0 {
		schemes = []string{"http"}
	}
	apidocs.SwaggerInfo.Host = host
	apidocs.SwaggerInfo.Schemes = schemes
	app.Get("/swagger/*", swagger.HandlerDefault)
}
