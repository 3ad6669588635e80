package public

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/services"
)

// PageHandler renders the public invitation pages.
type PageHandler struct {
	weddingService services.IWeddingService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{weddingService: services.NewWeddingService()}
}

// templateViews maps each template onto its view file. Closed set; the
// Resolve fallback guarantees every stored identifier lands here.
var templateViews = map[models.WeddingTemplate]string{
	models.TemplateClassic: "templates/classic",
	models.TemplateModern:  "templates/modern",
	models.TemplateElegant: "templates/elegant",
	models.TemplateRustic:  "templates/rustic",
}

// ShowInvitation handles GET /invitation/:slug. Unpublished weddings
// and unknown slugs render the same 404 page.
func (h *PageHandler) ShowInvitation(c *fiber.Ctx) error {
	pageSlug := c.Params("slug")

	page, err := h.weddingService.GetWeddingBySlug(c.UserContext(), pageSlug)
	if err != nil {
		if errors.Is(err, services.ErrWeddingNotFound) {
			return h.renderNotFound(c, "Invitation not found")
		}
		configslog.Log.Error("ShowInvitation: slug lookup failed", zap.String("slug", pageSlug), zap.Error(err))
		return h.renderError(c, "The invitation could not be loaded.")
	}

	view := templateViews[page.TemplateID.Resolve()]
	return c.Render(view, fiber.Map{
		"Title":   page.BrideName + " & " + page.GroomName,
		"Wedding": page.Wedding,
		"Photos":  page.Photos,
	})
}

func (h *PageHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	})
}

func (h *PageHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Server Error",
		"Message": message,
	})
}
