package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/services"
)

// WeddingHandler serves the wedding JSON endpoints.
type WeddingHandler struct {
	service services.IWeddingService
}

// NewWeddingHandler creates a new WeddingHandler.
func NewWeddingHandler() *WeddingHandler {
	return &WeddingHandler{service: services.NewWeddingService()}
}

type createWeddingRequest struct {
	Title       string    `json:"title"`
	BrideName   string    `json:"brideName"`
	GroomName   string    `json:"groomName"`
	WeddingDate time.Time `json:"weddingDate"`
	Venue       string    `json:"venue"`
	Description *string   `json:"description"`
}

type updateWeddingRequest struct {
	Title        *string                 `json:"title"`
	BrideName    *string                 `json:"brideName"`
	GroomName    *string                 `json:"groomName"`
	WeddingDate  *time.Time              `json:"weddingDate"`
	Venue        *string                 `json:"venue"`
	Description  *string                 `json:"description"`
	HeroPhotoURL *string                 `json:"heroPhotoUrl"`
	PlaceDetails *string                 `json:"placeDetails"`
	TemplateID   *models.WeddingTemplate `json:"templateId"`
}

// CreateWedding handles POST /weddings.
func (h *WeddingHandler) CreateWedding(c *fiber.Ctx) error {
	var req createWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("CreateWedding: body could not be parsed", zap.Error(err))
		return respondBadRequest(c, "invalid request body")
	}

	wedding, err := h.service.CreateWedding(c.UserContext(), services.CreateWeddingInput{
		Title:       req.Title,
		BrideName:   req.BrideName,
		GroomName:   req.GroomName,
		WeddingDate: req.WeddingDate,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wedding)
}

// GetWedding handles GET /weddings/:id.
func (h *WeddingHandler) GetWedding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	wedding, err := h.service.GetWeddingByID(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wedding)
}

// GetWeddingWithPhotos handles GET /weddings/:id/with-photos.
func (h *WeddingHandler) GetWeddingWithPhotos(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	wedding, err := h.service.GetWeddingWithPhotos(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wedding)
}

// GetWeddingPage handles GET /wedding-page/:slug, the JSON twin of the
// rendered public page.
func (h *WeddingHandler) GetWeddingPage(c *fiber.Ctx) error {
	page, err := h.service.GetWeddingBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// ListWeddings handles GET /weddings.
func (h *WeddingHandler) ListWeddings(c *fiber.Ctx) error {
	weddings, err := h.service.ListWeddings(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"weddings": weddings})
}

// UpdateWedding handles PUT /weddings/:id. Absent fields keep their
// stored values.
func (h *WeddingHandler) UpdateWedding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	var req updateWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("UpdateWedding: body could not be parsed", zap.Error(err))
		return respondBadRequest(c, "invalid request body")
	}

	wedding, err := h.service.UpdateWedding(c.UserContext(), uint(id), services.UpdateWeddingInput{
		Title:        req.Title,
		BrideName:    req.BrideName,
		GroomName:    req.GroomName,
		WeddingDate:  req.WeddingDate,
		Venue:        req.Venue,
		Description:  req.Description,
		HeroPhotoURL: req.HeroPhotoURL,
		PlaceDetails: req.PlaceDetails,
		TemplateID:   req.TemplateID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wedding)
}

// PublishWedding handles POST /weddings/:id/publish.
func (h *WeddingHandler) PublishWedding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid wedding ID")
	}

	wedding, url, err := h.service.PublishWedding(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"wedding": wedding, "webpageUrl": url})
}
