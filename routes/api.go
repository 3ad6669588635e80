package routes

import (
	"github.com/gofiber/fiber/v2"

	api_handlers "vows.link/handlers/api"
)

// registerAPIRoutes defines the JSON API, one resource-oriented
// endpoint per operation.
func registerAPIRoutes(app *fiber.App) {
	weddingHandler := api_handlers.NewWeddingHandler()
	guestHandler := api_handlers.NewGuestHandler()
	rsvpHandler := api_handlers.NewRSVPHandler()
	photoHandler := api_handlers.NewWeddingPhotoHandler()

	app.Post("/weddings", weddingHandler.CreateWedding)              // POST /weddings
	app.Get("/weddings", weddingHandler.ListWeddings)                // GET  /weddings
	app.Get("/weddings/:id/with-photos", weddingHandler.GetWeddingWithPhotos)
	app.Post("/weddings/:id/publish", weddingHandler.PublishWedding) // POST /weddings/{id}/publish
	app.Get("/weddings/:weddingId/guests", guestHandler.ListGuests)  // GET  /weddings/{id}/guests
	app.Get("/weddings/:weddingId/rsvp-stats", rsvpHandler.GetRSVPStats)
	app.Get("/weddings/:id", weddingHandler.GetWedding)              // GET  /weddings/{id}
	app.Put("/weddings/:id", weddingHandler.UpdateWedding)           // PUT  /weddings/{id}

	app.Get("/wedding-page/:slug", weddingHandler.GetWeddingPage) // published weddings only

	app.Post("/guests", guestHandler.AddGuest) // POST /guests
	app.Get("/guests/:id", guestHandler.GetGuest)

	app.Post("/wedding-photos", photoHandler.AddPhoto) // POST /wedding-photos

	app.Post("/rsvp", rsvpHandler.SubmitRSVP) // POST /rsvp
}
