package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/token", handler.Token)
	auth.Get("/validate_token", handler.ValidateToken)

	diagnostics := app.Group("/diagnostics", handler.AuthRequired)
	diagnostics.Post("/", handler.CreateDiagnostic)
	diagnostics.Get("/", handler.ListDiagnostics)
	diagnostics.Get("/:id", handler.GetDiagnostic)

	chat := app.Group("/agent", handler.AuthRequired)
	chat.Post("/chat", handler.Chat)
	chat.Get("/session", handler.GetSession)
	chat.Get("/sessions", handler.ListSessions)
	chat.Delete("/session/:id", handler.DeleteSession)
}
