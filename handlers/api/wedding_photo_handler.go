package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/services"
)

// WeddingPhotoHandler serves the gallery endpoints.
type WeddingPhotoHandler struct {
	service services.IWeddingPhotoService
}

// NewWeddingPhotoHandler creates a new WeddingPhotoHandler.
func NewWeddingPhotoHandler() *WeddingPhotoHandler {
	return &WeddingPhotoHandler{service: services.NewWeddingPhotoService()}
}

type addPhotoRequest struct {
	WeddingID    uint    `json:"weddingId"`
	PhotoURL     string  `json:"photoUrl"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"displayOrder"`
}

// AddPhoto handles POST /wedding-photos.
func (h *WeddingPhotoHandler) AddPhoto(c *fiber.Ctx) error {
	var req addPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("AddPhoto: body could not be parsed", zap.Error(err))
		return respondBadRequest(c, "invalid request body")
	}

	photo, err := h.service.AddPhoto(c.UserContext(), services.AddPhotoInput{
		WeddingID:    req.WeddingID,
		PhotoURL:     req.PhotoURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}
