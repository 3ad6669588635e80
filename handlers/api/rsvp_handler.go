package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/services"
)

// RSVPHandler serves RSVP submission and statistics.
type RSVPHandler struct {
	service services.IRSVPService
}

// NewRSVPHandler creates a new RSVPHandler.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{service: services.NewRSVPService()}
}

type submitRSVPRequest struct {
	GuestID             uint    `json:"guestId"`
	Attending           bool    `json:"attending"`
	PlusOneAttending    bool    `json:"plusOneAttending"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
	Message             *string `json:"message"`
}

// SubmitRSVP handles POST /rsvp. A guest may submit any number of
// times; each submission replaces the previous one.
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var req submitRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("SubmitRSVP: body could not be parsed", zap.Error(err))
		return respondBadRequest(c, "invalid request body")
	}

	rsvp, err := h.service.SubmitRSVP(c.UserContext(), services.SubmitRSVPInput{
		GuestID:             req.GuestID,
		Attending:           req.Attending,
		PlusOneAttending:    req.PlusOneAttending,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rsvp)
}

// GetRSVPStats handles GET /weddings/:weddingId/rsvp-stats.
func (h *RSVPHandler) GetRSVPStats(c *fiber.Ctx) error {
	weddingID, err := c.ParamsInt("weddingId")
	if err != nil || weddingID <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	stats, err := h.service.GetRSVPStats(c.UserContext(), uint(weddingID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"stats": stats})
}
