package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smartresume/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, resume *handlers.ResumeHandler, requireAuth fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Smart Resume API, backend is running")
	})

	// Health and readiness endpoints for probes/monitoring
	v1 := app.Group("/api/v1")
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/logout", requireAuth, auth.Logout)

	// Resume pipeline, session-gated
	api.Post("/resume/analyze", requireAuth, resume.Analyze)
	api.Get("/resumes/history", requireAuth, resume.History)

	app.Get("/file/:filename", requireAuth, resume.FetchFile)
	app.Delete("/delete/:filename", requireAuth, resume.Delete)
}
