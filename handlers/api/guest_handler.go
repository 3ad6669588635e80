package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/services"
)

// GuestHandler serves the guest JSON endpoints.
type GuestHandler struct {
	service services.IGuestService
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler() *GuestHandler {
	return &GuestHandler{service: services.NewGuestService()}
}

type addGuestRequest struct {
	WeddingID      uint    `json:"weddingId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	PlusOneAllowed bool    `json:"plusOneAllowed"`
}

// AddGuest handles POST /guests.
func (h *GuestHandler) AddGuest(c *fiber.Ctx) error {
	var req addGuestRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("AddGuest: body could not be parsed", zap.Error(err))
		return respondBadRequest(c, "invalid request body")
	}

	guest, err := h.service.AddGuest(c.UserContext(), services.AddGuestInput{
		WeddingID:      req.WeddingID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PlusOneAllowed: req.PlusOneAllowed,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(guest)
}

// ListGuests handles GET /weddings/:weddingId/guests.
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	weddingID, err := c.ParamsInt("weddingId")
	if err != nil || weddingID <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	guests, err := h.service.ListGuests(c.UserContext(), uint(weddingID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"guests": guests})
}

// GetGuest handles GET /guests/:id, returning the guest with its owning
// wedding.
func (h *GuestHandler) GetGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid guest ID")
	}

	guest, err := h.service.GetGuestByID(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guest)
}
