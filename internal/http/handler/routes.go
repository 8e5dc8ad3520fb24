package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"examdocs/internal/service"
)

// Deps are the collaborators of the HTTP layer. DB and Bundles are nil when archiving is disabled.
type Deps struct {
	DB       *sql.DB
	Sessions service.SessionService
	Exams    service.ExamService
	Bundles  service.BundleService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/template", DownloadTemplate())

	app.Post("/sessions", CreateSession(d.Sessions))
	app.Get("/sessions/:id", GetSession(d.Sessions))
	app.Delete("/sessions/:id", DeleteSession(d.Sessions))
	app.Post("/sessions/:id/rooms", AddRoom(d.Sessions))
	app.Delete("/sessions/:id/rooms", ClearRooms(d.Sessions))
	app.Post("/sessions/:id/check", CheckStudents(d.Exams))
	app.Post("/sessions/:id/documents", GenerateDocuments(d.Exams))

	if d.Bundles == nil {
		disabled := ArchiveDisabled()
		app.Get("/bundles", disabled)
		app.Get("/bundles/:id", disabled)
		app.Get("/bundles/:id/download", disabled)
		app.Delete("/bundles/:id", disabled)
		return
	}
	app.Get("/bundles", ListBundles(d.Bundles))
	app.Get("/bundles/:id", GetBundle(d.Bundles))
	app.Get("/bundles/:id/download", DownloadBundle(d.Bundles))
	app.Delete("/bundles/:id", DeleteBundle(d.Bundles))
}
