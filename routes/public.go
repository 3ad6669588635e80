package routes

import (
	"github.com/gofiber/fiber/v2"

	public_handlers "vows.link/handlers/public"
)

// registerPublicRoutes defines the rendered invitation pages.
func registerPublicRoutes(app *fiber.App) {
	pageHandler := public_handlers.NewPageHandler()

	app.Get("/invitation/:slug", pageHandler.ShowInvitation)
}
